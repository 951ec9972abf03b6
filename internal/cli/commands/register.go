package commands

import (
	"context"
	"fmt"

	"voyagee/internal/cli/bootstrap"
	"voyagee/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Criar uma conta local e iniciar sessão" }
func (registerCmd) Usage() string       { return "register <name> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	u, err := app.Identity.SignUp(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Bem-vindo(a), %s! Conta criada.\n", u.Name)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
