package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"voyagee/internal/apperr"
	"voyagee/internal/capability"
	"voyagee/internal/cli/bootstrap"
	"voyagee/internal/config"
	"voyagee/internal/model"
	"voyagee/internal/query"
	"voyagee/internal/service"
)

type expenseCmd struct{}

func (expenseCmd) Name() string        { return "expense" }
func (expenseCmd) Description() string { return "Registrar e consultar despesas" }
func (expenseCmd) Usage() string {
	return "expense add <trip-id> <title> <amount> <currency> <category> [brl-amount] | list <trip-id> | summary <trip-id> | rm <id>"
}

func (expenseCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
		if len(args) < 6 || len(args) > 7 {
			return ErrUsage
		}
		amount, err := decimal.NewFromString(args[3])
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[3])
		}
		currency := strings.ToUpper(args[4])
		var converted decimal.Decimal
		switch {
		case len(args) == 7:
			// Manually confirmed BRL value.
			converted, err = decimal.NewFromString(args[6])
			if err != nil {
				return fmt.Errorf("invalid BRL amount %q", args[6])
			}
		case currency == "BRL":
			converted = amount
		default:
			rates := capability.NewERAPIRates(cfg.RatesURL, capability.NewClient(cfg.HTTPTimeout(), cfg.HTTPRetries))
			rate, err := rates.RateToBRL(ctx, currency)
			if err != nil {
				if apperr.IsType(err, apperr.CapabilityUnavailable) {
					return fmt.Errorf("cotação indisponível para %s; informe o valor em reais: %w", currency, err)
				}
				return err
			}
			converted = amount.Mul(rate).Round(2)
			fmt.Fprintf(Out, "Cotação: 1 %s = R$ %s\n", currency, rate.Round(2))
		}
		exp, err := app.Data.AddExpense(service.ExpenseInput{
			TripID:           args[1],
			Title:            args[2],
			OriginalAmount:   amount,
			OriginalCurrency: currency,
			ConvertedBRL:     converted,
			Category:         args[5],
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Despesa registrada: %s %s (%s)\n", exp.Title, model.FormatBRL(exp.ConvertedBRL), exp.ID)
		return nil

	case "list":
		if len(args) != 2 {
			return ErrUsage
		}
		doc := app.Data.Snapshot()
		expenses := query.TripExpenses(doc, args[1])
		if len(expenses) == 0 {
			fmt.Fprintln(Out, "Nenhuma despesa.")
			return nil
		}
		for _, e := range expenses {
			cat := model.CategoryLabel(e.Category)
			fmt.Fprintf(Out, "- %s %s  %s %s -> %s  (%s)\n",
				cat.Icon, e.Title, e.OriginalAmount, e.OriginalCurrency, model.FormatBRL(e.ConvertedBRL), e.ID)
		}
		fmt.Fprintf(Out, "Total: %s\n", model.FormatBRL(query.TripTotalBRL(doc, args[1])))
		return nil

	case "summary":
		if len(args) != 2 {
			return ErrUsage
		}
		trip, err := app.Data.GetTrip(args[1])
		if err != nil {
			return err
		}
		doc := app.Data.Snapshot()
		for _, ct := range query.ByCategory(query.TripExpenses(doc, trip.ID)) {
			cat := model.CategoryLabel(ct.Category)
			fmt.Fprintf(Out, "%s %-12s %s\n", cat.Icon, cat.Label, model.FormatBRL(ct.TotalBRL))
		}
		burn := query.BudgetBurnFor(doc, trip)
		fmt.Fprintf(Out, "Total: %s\n", model.FormatBRL(burn.Spent))
		if burn.HasBudget {
			fmt.Fprintf(Out, "Orçamento: %s  restante %s (%s%% usado)\n",
				model.FormatBRL(burn.Budget), model.FormatBRL(burn.Remaining), burn.PercentUsed)
		}
		return nil

	case "rm":
		if len(args) != 2 {
			return ErrUsage
		}
		if err := app.Data.DeleteExpense(args[1]); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Despesa removida.")
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(expenseCmd{}) }
