package commands

import (
	"context"
	"fmt"

	"voyagee/internal/cli/bootstrap"
	"voyagee/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Encerrar a sessão atual" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := app.Identity.Logout(); err != nil {
		return err
	}
	app.Data.ClearUser()
	fmt.Fprintln(Out, "Sessão encerrada. Seus dados continuam salvos.")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
