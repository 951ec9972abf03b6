package commands

import (
	"context"
	"fmt"

	"voyagee/internal/cli/bootstrap"
	"voyagee/internal/config"
	"voyagee/internal/service"
)

type profileCmd struct{}

func (profileCmd) Name() string        { return "profile" }
func (profileCmd) Description() string { return "Mostrar ou atualizar o perfil" }
func (profileCmd) Usage() string       { return "profile [set <field> <value>]" }

var profileFields = map[string]func(*service.ProfileUpdate, string){
	"name":                    func(u *service.ProfileUpdate, v string) { u.Name = &v },
	"email":                   func(u *service.ProfileUpdate, v string) { u.Email = &v },
	"phone":                   func(u *service.ProfileUpdate, v string) { u.Phone = &v },
	"birthdate":               func(u *service.ProfileUpdate, v string) { u.Birthdate = &v },
	"nationality":             func(u *service.ProfileUpdate, v string) { u.Nationality = &v },
	"passport":                func(u *service.ProfileUpdate, v string) { u.Passport = &v },
	"currency":                func(u *service.ProfileUpdate, v string) { u.PreferredCurrency = &v },
	"emergency-contact":       func(u *service.ProfileUpdate, v string) { u.EmergencyContactName = &v },
	"emergency-contact-phone": func(u *service.ProfileUpdate, v string) { u.EmergencyContactPhone = &v },
}

func (profileCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	if len(args) == 0 {
		u, err := app.Identity.Current()
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Nome: %s\nEmail: %s\nTelefone: %s\nNascimento: %s\n", u.Name, u.Email, u.Phone, u.Birthdate)
		fmt.Fprintf(Out, "Nacionalidade: %s\nPassaporte: %s\nMoeda: %s\n", u.Nationality, u.Passport, u.PreferredCurrency)
		fmt.Fprintf(Out, "Contato de emergência: %s %s\n", u.EmergencyContactName, u.EmergencyContactPhone)
		return nil
	}
	if len(args) != 3 || args[0] != "set" {
		return ErrUsage
	}
	apply, ok := profileFields[args[1]]
	if !ok {
		return fmt.Errorf("unknown field %q", args[1])
	}
	var upd service.ProfileUpdate
	apply(&upd, args[2])
	if err := app.Identity.UpdateProfile(upd); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Perfil atualizado.")
	return nil
}

func init() { RegisterCmd(profileCmd{}) }
