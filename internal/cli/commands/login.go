package commands

import (
	"context"
	"fmt"

	"voyagee/internal/cli/bootstrap"
	"voyagee/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Iniciar sessão com uma conta existente" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	u, err := app.Identity.Login(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Olá, %s!\n", u.Name)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
