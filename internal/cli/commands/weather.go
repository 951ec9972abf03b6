package commands

import (
	"context"
	"fmt"
	"strings"

	"voyagee/internal/capability"
	"voyagee/internal/config"
)

type weatherCmd struct{}

func (weatherCmd) Name() string        { return "weather" }
func (weatherCmd) Description() string { return "Mostrar o tempo atual em um lugar" }
func (weatherCmd) Usage() string       { return "weather <place...>" }

func (weatherCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	place := strings.Join(args, " ")
	client := capability.NewClient(cfg.HTTPTimeout(), cfg.HTTPRetries)
	geocoder := capability.NewNominatimGeocoder(cfg.GeocoderURL, client)
	source := capability.NewOpenMeteoWeather(cfg.WeatherURL, client, geocoder)
	w, err := source.Current(ctx, place)
	if err != nil {
		// Soft failure: weather never blocks anything.
		fmt.Fprintf(Out, "%s: tempo indisponível\n", place)
		return nil
	}
	fmt.Fprintf(Out, "%s: %.1f°C (código %d)\n", place, w.TemperatureCelsius, w.ConditionCode)
	return nil
}

func init() { RegisterCmd(weatherCmd{}) }
