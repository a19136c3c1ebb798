package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/shuv1824/kidsactivities/internal/types"
)

var (
	data     types.Catalog
	loadOnce sync.Once
	loadErr  error
)

// Load reads the catalog file once. Safe to call multiple times.
func Load(filepath string) error {
	loadOnce.Do(func() {
		file, err := os.Open(filepath)
		if err != nil {
			loadErr = err
			return
		}
		defer file.Close()

		data, loadErr = Parse(file)
	})

	return loadErr
}

// Parse decodes a catalog document and drops entries without an id or name.
func Parse(r io.Reader) (types.Catalog, error) {
	var raw types.Catalog
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return types.Catalog{}, fmt.Errorf("failed to decode catalog: %w", err)
	}

	var c types.Catalog
	for _, cat := range raw.Categories {
		if cat.Name == "" {
			continue
		}
		if cat.ID == "" {
			cat.ID = cat.Name
		}
		c.Categories = append(c.Categories, cat)
	}
	for _, loc := range raw.Locations {
		if loc.Name == "" && loc.City == "" {
			continue
		}
		if loc.ID == "" {
			loc.ID = strings.ToLower(loc.Name)
		}
		c.Locations = append(c.Locations, loc)
	}
	for _, ar := range raw.AgeRanges {
		if ar.ID == "" || ar.Min > ar.Max {
			continue
		}
		c.AgeRanges = append(c.AgeRanges, ar)
	}

	return c, nil
}

func Get() types.Catalog {
	return data
}

// Cities returns the distinct non-empty city names from the catalog locations
// followed by any new ones carried by activities, in first-seen order.
func Cities(locations []types.Location, activities []types.Activity) []types.City {
	seen := make(map[string]bool)
	var cities []types.City

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		cities = append(cities, types.City{ID: strings.ToLower(name), Name: name})
	}

	for _, loc := range locations {
		add(loc.City)
	}
	for _, a := range activities {
		add(a.CityName())
	}

	return cities
}

// FindAgeRange looks up a preset by id.
func FindAgeRange(presets []types.AgeRangePreset, id string) (types.AgeRangePreset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return types.AgeRangePreset{}, false
}
