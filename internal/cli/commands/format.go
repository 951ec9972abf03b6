package commands

import (
	"fmt"

	"voyagee/internal/model"
	"voyagee/internal/query"
)

var monthsShortPT = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// formatDate renders "2026-01-10" as "10 de jan de 2026".
func formatDate(dateStr string) string {
	d, err := model.ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%02d de %s de %d", d.Day(), monthsShortPT[d.Month()-1], d.Year())
}

// formatDateShort renders "2026-01-10" as "10 jan".
func formatDateShort(dateStr string) string {
	d, err := model.ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%02d %s", d.Day(), monthsShortPT[d.Month()-1])
}

// countdownText phrases a countdown the way the home screen does.
func countdownText(c query.Countdown) string {
	switch c.Status {
	case query.StatusPast:
		return "Viagem concluída"
	case query.StatusInProgress:
		return "Em andamento!"
	}
	if c.DaysRemaining == 1 {
		return "Amanhã!"
	}
	return fmt.Sprintf("Em %d dias", c.DaysRemaining)
}
