package commands

import (
	"context"
	"fmt"

	"voyagee/internal/cli/bootstrap"
	"voyagee/internal/config"
)

type destCmd struct{}

func (destCmd) Name() string        { return "dest" }
func (destCmd) Description() string { return "Gerenciar destinos de uma viagem" }
func (destCmd) Usage() string {
	return "dest add <trip-id> <name> <arrival> <departure> | rm <trip-id> <dest-id>"
}

func (destCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
		if len(args) != 5 {
			return ErrUsage
		}
		d, err := app.Data.AddDestination(args[1], args[2], args[3], args[4])
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Destino adicionado: %s (%s)\n", d.Name, d.ID)
		return nil
	case "rm":
		if len(args) != 3 {
			return ErrUsage
		}
		if err := app.Data.RemoveDestination(args[1], args[2]); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Destino removido.")
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(destCmd{}) }
