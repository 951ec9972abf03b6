package commands

import (
	"context"
	"fmt"
	"strconv"

	"voyagee/internal/capability"
	"voyagee/internal/config"
)

type exploreCmd struct{}

func (exploreCmd) Name() string        { return "explore" }
func (exploreCmd) Description() string { return "Buscar lugares próximos a uma coordenada" }
func (exploreCmd) Usage() string       { return "explore <lat> <lng> [category]" }

// exploreSlot supersedes older searches; only the newest result is printed.
var exploreSlot capability.Slot

func (exploreCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	if cfg.PlacesURL == "" {
		return fmt.Errorf("no places endpoint configured (VOYAGEE_PLACES_URL)")
	}
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q", args[0])
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q", args[1])
	}
	category := "tourism"
	if len(args) == 3 {
		category = args[2]
	}
	token := exploreSlot.Begin()
	source := capability.NewHTTPPlaces(cfg.PlacesURL, capability.NewClient(cfg.HTTPTimeout(), cfg.HTTPRetries))
	places, err := source.Nearby(ctx, lat, lng, category)
	if exploreSlot.Stale(token) {
		return nil
	}
	if err != nil {
		// Soft failure: show an empty list instead of blocking.
		fmt.Fprintln(Out, "Nenhum lugar encontrado (serviço indisponível).")
		return nil
	}
	if len(places) == 0 {
		fmt.Fprintln(Out, "Nenhum lugar encontrado.")
		return nil
	}
	for _, p := range places {
		fmt.Fprintf(Out, "- %s  %.1f★ (%d)  %s\n", p.Title, p.Rating, p.RatingCount, p.Vicinity)
	}
	return nil
}

func init() { RegisterCmd(exploreCmd{}) }
