package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"voyagee/internal/cli/bootstrap"
	"voyagee/internal/config"
	"voyagee/internal/model"
	"voyagee/internal/query"
	"voyagee/internal/service"
)

type tripCmd struct{}

func (tripCmd) Name() string        { return "trip" }
func (tripCmd) Description() string { return "Gerenciar viagens" }
func (tripCmd) Usage() string {
	return "trip add <name> <start> <end> | list | show <id> | edit <id> <name|start|end> <value> | rm <id> | notes <id> <text> | budget <id> <amount>"
}

func (tripCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
		if len(args) != 4 {
			return ErrUsage
		}
		t, err := app.Data.AddTrip(args[1], args[2], args[3], nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Viagem criada: %s (%s)\n", t.Name, t.ID)
		return nil

	case "list":
		if len(args) != 1 {
			return ErrUsage
		}
		trips := query.SortTripsForListing(app.Data.Trips(), time.Now())
		if len(trips) == 0 {
			fmt.Fprintln(Out, "Nenhuma viagem. Comece com: trip add")
			return nil
		}
		doc := app.Data.Snapshot()
		for _, t := range trips {
			c := query.CountdownFor(t.StartDate, t.EndDate, time.Now())
			total := query.TripTotalBRL(doc, t.ID)
			fmt.Fprintf(Out, "- %s  %s — %s  [%s]  gasto %s  (%s)\n",
				t.Name, formatDateShort(t.StartDate), formatDateShort(t.EndDate),
				countdownText(c), model.FormatBRL(total), t.ID)
		}
		return nil

	case "show":
		if len(args) != 2 {
			return ErrUsage
		}
		t, err := app.Data.GetTrip(args[1])
		if err != nil {
			return err
		}
		doc := app.Data.Snapshot()
		c := query.CountdownFor(t.StartDate, t.EndDate, time.Now())
		fmt.Fprintf(Out, "%s\n%s — %s  [%s]\n", t.Name, formatDate(t.StartDate), formatDate(t.EndDate), countdownText(c))
		for _, d := range t.Destinations {
			fmt.Fprintf(Out, "  destino: %s  %s — %s  (%s)\n",
				d.Name, formatDateShort(d.ArrivalDate), formatDateShort(d.DepartureDate), d.ID)
		}
		burn := query.BudgetBurnFor(doc, t)
		if burn.HasBudget {
			fmt.Fprintf(Out, "Orçamento: %s  gasto %s (%s%%)\n",
				model.FormatBRL(burn.Budget), model.FormatBRL(burn.Spent), burn.PercentUsed)
			if burn.Over {
				fmt.Fprintln(Out, "Atenção: orçamento estourado!")
			}
		} else {
			fmt.Fprintf(Out, "Orçamento: não definido  gasto %s\n", model.FormatBRL(burn.Spent))
		}
		if t.EssentialNotes != "" {
			fmt.Fprintf(Out, "Notas: %s\n", t.EssentialNotes)
		}
		return nil

	case "edit":
		if len(args) != 4 {
			return ErrUsage
		}
		var upd service.TripUpdate
		switch args[2] {
		case "name":
			upd.Name = &args[3]
		case "start":
			upd.StartDate = &args[3]
		case "end":
			upd.EndDate = &args[3]
		default:
			return ErrUsage
		}
		if err := app.Data.UpdateTrip(args[1], upd); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Viagem atualizada.")
		return nil

	case "rm":
		if len(args) != 2 {
			return ErrUsage
		}
		if err := app.Data.DeleteTrip(args[1]); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Viagem removida, com atividades e despesas.")
		return nil

	case "notes":
		if len(args) < 3 {
			return ErrUsage
		}
		notes := strings.Join(args[2:], " ")
		if err := app.Data.UpdateTrip(args[1], service.TripUpdate{EssentialNotes: &notes}); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Notas salvas.")
		return nil

	case "budget":
		if len(args) != 3 {
			return ErrUsage
		}
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[2])
		}
		if err := app.Data.UpdateTrip(args[1], service.TripUpdate{Budget: &amount}); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Orçamento definido: %s\n", model.FormatBRL(amount))
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(tripCmd{}) }
