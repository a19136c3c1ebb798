package landing

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/shuv1824/kidsactivities/internal/display"
	"github.com/shuv1824/kidsactivities/internal/listing"
	"github.com/shuv1824/kidsactivities/internal/types"
	"github.com/shuv1824/kidsactivities/internal/utils/catalog"
)

// Source supplies the three landing page queries. Implementations return an
// empty list alongside any error.
type Source interface {
	Activities(ctx context.Context) ([]types.Activity, error)
	Featured(ctx context.Context) ([]types.Activity, error)
	Popular(ctx context.Context, n int) ([]types.Activity, error)
}

// Page is everything the landing page renders.
type Page struct {
	State      listing.FilterState
	Featured   []types.Activity
	Popular    []types.Activity
	Visible    []types.Activity
	Page       int
	TotalPages int
	Total      int

	Categories []types.CategoryOption
	Cities     []types.City
	Locations  []types.Location
	AgeRanges  []types.AgeRangePreset

	// MapOpen shows the map dialog with every activity that has coordinates.
	MapOpen    bool
	MapMarkers []types.Activity
}

type Builder struct {
	source       Source
	catalog      types.Catalog
	popularCount int
}

func NewBuilder(source Source, c types.Catalog, popularCount int) *Builder {
	return &Builder{source: source, catalog: c, popularCount: popularCount}
}

// Build fetches the three queries concurrently and derives the page. A failed
// query contributes an empty list; Build itself does not fail.
func (b *Builder) Build(ctx context.Context, state listing.FilterState, mapOpen bool) Page {
	var all, featured, popular []types.Activity

	// Each query absorbs its own failure, so no goroutine cancels the others.
	var g errgroup.Group
	g.Go(func() error {
		all = b.query(ctx, "activities", b.source.Activities)
		return nil
	})
	g.Go(func() error {
		featured = b.query(ctx, "featured", b.source.Featured)
		return nil
	})
	g.Go(func() error {
		popular = b.query(ctx, "popular", func(ctx context.Context) ([]types.Activity, error) {
			return b.source.Popular(ctx, b.popularCount)
		})
		return nil
	})
	g.Wait()

	res := listing.Apply(all, state)

	p := Page{
		State:      state,
		Featured:   featured,
		Popular:    popular,
		Visible:    res.Items,
		Page:       res.Page,
		TotalPages: res.TotalPages,
		Total:      res.Total,
		Categories: display.CategoryOptions(b.catalog.Categories),
		Cities:     catalog.Cities(b.catalog.Locations, all),
		Locations:  b.catalog.Locations,
		AgeRanges:  b.catalog.AgeRanges,
		MapOpen:    mapOpen,
	}
	if mapOpen {
		for _, a := range all {
			if a.HasCoordinates() {
				p.MapMarkers = append(p.MapMarkers, a)
			}
		}
	}
	return p
}

// Filters returns the filter options without applying any state.
func (b *Builder) Filters(ctx context.Context) types.FiltersResponse {
	all := b.query(ctx, "activities", b.source.Activities)
	return types.FiltersResponse{
		Categories: display.CategoryOptions(b.catalog.Categories),
		Cities:     catalog.Cities(b.catalog.Locations, all),
		Locations:  b.catalog.Locations,
		AgeRanges:  b.catalog.AgeRanges,
	}
}

func (b *Builder) query(ctx context.Context, name string, fetch func(context.Context) ([]types.Activity, error)) []types.Activity {
	data, err := fetch(ctx)
	if err != nil {
		slog.WarnContext(ctx, "activity query failed", "query", name, "error", err)
		return []types.Activity{}
	}
	if data == nil {
		return []types.Activity{}
	}
	return data
}
