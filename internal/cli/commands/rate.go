package commands

import (
	"context"
	"fmt"
	"strings"

	"voyagee/internal/capability"
	"voyagee/internal/config"
	"voyagee/internal/model"
)

type rateCmd struct{}

func (rateCmd) Name() string        { return "rate" }
func (rateCmd) Description() string { return "Consultar a cotação de uma moeda em reais" }
func (rateCmd) Usage() string       { return "rate [currency]" }

func (rateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		for _, c := range model.CommonCurrencies {
			fmt.Fprintf(Out, "%s  %-4s %s\n", c.Code, c.Symbol, c.Name)
		}
		return nil
	}
	if len(args) != 1 {
		return ErrUsage
	}
	code := strings.ToUpper(args[0])
	rates := capability.NewERAPIRates(cfg.RatesURL, capability.NewClient(cfg.HTTPTimeout(), cfg.HTTPRetries))
	rate, err := rates.RateToBRL(ctx, code)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "1 %s = R$ %s\n", code, rate.Round(4))
	return nil
}

func init() { RegisterCmd(rateCmd{}) }
