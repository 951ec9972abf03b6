package commands

import (
	"context"
	"fmt"

	"voyagee/internal/cli/bootstrap"
	"voyagee/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Mostrar a sessão atual e um resumo dos dados" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	u, err := app.Identity.Current()
	if err != nil {
		fmt.Fprintln(Out, "Nenhuma sessão ativa. Use register ou login.")
		return nil
	}
	doc := app.Data.Snapshot()
	fmt.Fprintf(Out, "Usuário: %s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(Out, "Viagens: %d  Atividades: %d  Despesas: %d\n",
		len(doc.Trips), len(doc.ItineraryItems), len(doc.Expenses))
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
