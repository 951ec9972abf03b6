package commands

import (
	"context"
	"fmt"
	"strings"

	"voyagee/internal/cli/bootstrap"
	"voyagee/internal/config"
	"voyagee/internal/query"
	"voyagee/internal/service"
)

type planCmd struct{}

func (planCmd) Name() string        { return "plan" }
func (planCmd) Description() string { return "Gerenciar o roteiro dia a dia" }
func (planCmd) Usage() string {
	return "plan add <trip-id> <day> <time|-> <title...> | list <trip-id> | edit <item-id> <field> <value...> | retime <item-id> <time|-> | rm <item-id>"
}

func (planCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	app, done, err := bootstrap.RequireUser(cfg)
	if err != nil {
		return err
	}
	defer done()

	switch args[0] {
	case "add":
		if len(args) < 5 {
			return ErrUsage
		}
		timeOfDay := args[3]
		if timeOfDay == "-" {
			timeOfDay = ""
		}
		item, err := app.Data.AddItineraryItem(service.ItineraryItemInput{
			TripID:  args[1],
			DayDate: args[2],
			Time:    timeOfDay,
			Title:   strings.Join(args[4:], " "),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Atividade adicionada: %s (%s)\n", item.Title, item.ID)
		return nil

	case "list":
		if len(args) != 2 {
			return ErrUsage
		}
		trip, err := app.Data.GetTrip(args[1])
		if err != nil {
			return err
		}
		doc := app.Data.Snapshot()
		buckets := query.DayBuckets(doc, trip)
		for _, day := range query.DateRange(trip.StartDate, trip.EndDate) {
			fmt.Fprintf(Out, "%s\n", formatDate(day))
			items := buckets[day]
			if len(items) == 0 {
				fmt.Fprintln(Out, "  (dia livre)")
				continue
			}
			for _, it := range items {
				hour := it.Time
				if hour == "" {
					hour = "--:--"
				}
				line := fmt.Sprintf("  %s  %s", hour, it.Title)
				if it.PlaceName != "" {
					line += "  @ " + it.PlaceName
				} else if it.Location != "" {
					line += "  @ " + it.Location
				}
				fmt.Fprintf(Out, "%s  (%s)\n", line, it.ID)
			}
		}
		return nil

	case "edit":
		if len(args) < 4 {
			return ErrUsage
		}
		value := strings.Join(args[3:], " ")
		var upd service.ItineraryItemUpdate
		switch args[2] {
		case "day":
			upd.DayDate = &value
		case "time":
			if value == "-" {
				value = ""
			}
			upd.Time = &value
		case "title":
			upd.Title = &value
		case "place":
			upd.PlaceName = &value
		case "location":
			upd.Location = &value
		case "desc":
			upd.Description = &value
		case "dest":
			upd.Destination = &value
		default:
			return ErrUsage
		}
		if err := app.Data.UpdateItineraryItem(args[1], upd); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Atividade atualizada.")
		return nil

	case "retime":
		if len(args) != 3 {
			return ErrUsage
		}
		timeOfDay := args[2]
		if timeOfDay == "-" {
			timeOfDay = ""
		}
		if err := app.Data.UpdateItineraryItem(args[1], service.ItineraryItemUpdate{Time: &timeOfDay}); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Horário atualizado.")
		return nil

	case "rm":
		if len(args) != 2 {
			return ErrUsage
		}
		if err := app.Data.DeleteItineraryItem(args[1]); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Atividade removida.")
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(planCmd{}) }
