package commands

import (
	"context"
	"fmt"

	"voyagee/internal/cli/bootstrap"
	"voyagee/internal/config"
)

type passwdCmd struct{}

func (passwdCmd) Name() string        { return "passwd" }
func (passwdCmd) Description() string { return "Trocar a senha da conta" }
func (passwdCmd) Usage() string       { return "passwd <current> <new>" }

func (passwdCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := app.Identity.ChangePassword(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Senha alterada.")
	return nil
}

func init() { RegisterCmd(passwdCmd{}) }
