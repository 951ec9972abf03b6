package model

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Expense category values. The set is fixed; anything else normalizes to
// CategoryOther.
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryTickets       = "tickets"
	CategoryTour          = "tour"
	CategoryAccommodation = "accommodation"
	CategoryShopping      = "shopping"
	CategoryOther         = "other"
)

// CategoryInfo describes a category for display.
type CategoryInfo struct {
	Value string
	Label string
	Icon  string
}

// ExpenseCategories is the fixed catalogue, in display order.
var ExpenseCategories = []CategoryInfo{
	{Value: CategoryFood, Label: "Alimentação", Icon: "🍽️"},
	{Value: CategoryTransport, Label: "Transporte", Icon: "🚗"},
	{Value: CategoryTickets, Label: "Passagens", Icon: "✈️"},
	{Value: CategoryTour, Label: "Passeio", Icon: "🎭"},
	{Value: CategoryAccommodation, Label: "Hospedagem", Icon: "🏨"},
	{Value: CategoryShopping, Label: "Compras", Icon: "🛍️"},
	{Value: CategoryOther, Label: "Outros", Icon: "📌"},
}

// NormalizeCategory maps unset or unknown category values to CategoryOther.
func NormalizeCategory(value string) string {
	for _, c := range ExpenseCategories {
		if c.Value == value {
			return value
		}
	}
	return CategoryOther
}

// CategoryLabel returns the display info for a category value, falling back
// to the "other" entry.
func CategoryLabel(value string) CategoryInfo {
	for _, c := range ExpenseCategories {
		if c.Value == value {
			return c
		}
	}
	return ExpenseCategories[len(ExpenseCategories)-1]
}

// CurrencyInfo describes a currency offered by the expense form.
type CurrencyInfo struct {
	Code   string
	Name   string
	Symbol string
}

// CommonCurrencies is the curated list shown to the user. Any ISO 4217 code
// is still accepted on input.
var CommonCurrencies = []CurrencyInfo{
	{Code: "BRL", Name: "Real Brasileiro", Symbol: "R$"},
	{Code: "USD", Name: "Dólar Americano", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "Libra Esterlina", Symbol: "£"},
	{Code: "ARS", Name: "Peso Argentino", Symbol: "$"},
	{Code: "CLP", Name: "Peso Chileno", Symbol: "$"},
	{Code: "COP", Name: "Peso Colombiano", Symbol: "$"},
	{Code: "PEN", Name: "Sol Peruano", Symbol: "S/"},
	{Code: "MXN", Name: "Peso Mexicano", Symbol: "$"},
	{Code: "JPY", Name: "Iene Japonês", Symbol: "¥"},
	{Code: "CAD", Name: "Dólar Canadense", Symbol: "$"},
	{Code: "AUD", Name: "Dólar Australiano", Symbol: "$"},
	{Code: "CHF", Name: "Franco Suíço", Symbol: "CHF"},
}

// Expense is an immutable logged cost entry. ConvertedBRL is the canonical
// amount for all aggregation and is fixed at creation time; it is never
// re-derived from the original amount.
type Expense struct {
	ID               string          `json:"id"`
	TripID           string          `json:"trip_id"`
	Title            string          `json:"title"`
	OriginalAmount   decimal.Decimal `json:"original_amount"`
	OriginalCurrency string          `json:"original_currency"`
	ConvertedBRL     decimal.Decimal `json:"converted_amount_BRL"`
	Category         string          `json:"category"`
}

// ValidCurrency reports whether code is a known ISO 4217 currency code.
func ValidCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// FormatBRL renders a BRL amount in the local convention, e.g. "R$1.234,50".
func FormatBRL(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.BRL)
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
