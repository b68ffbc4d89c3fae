package catalog

import (
	"encoding/json"
	"fmt"

	"utflykt/models"
	"utflykt/utils"
)

// ExcursionCatalog is the load-once catalog of bookable excursions.
type ExcursionCatalog struct {
	*Store[models.Excursion]
}

// excursionDocument mirrors the upstream JSON envelope. The wrapper key is
// singular in the data files.
type excursionDocument struct {
	Excursion []models.Excursion `json:"excursion"`
}

// NewExcursionCatalog creates the excursion catalog backed by the given fetcher.
func NewExcursionCatalog(fetcher DocumentFetcher, url string) *ExcursionCatalog {
	decode := func(data []byte) ([]models.Excursion, error) {
		var doc excursionDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid excursion document: %w", err)
		}
		return doc.Excursion, nil
	}
	idOf := func(e models.Excursion) string { return e.ID }
	return &ExcursionCatalog{Store: NewStore("excursions", url, fetcher, decode, idOf)}
}

// FilterExcursions returns all excursions matching the AND-combination of the
// given optional filters; an absent filter field matches everything. When a
// date is supplied, the season it falls in is matched against the stored
// season (a malformed date is ignored).
func (c *ExcursionCatalog) FilterExcursions(filters models.ExcursionFilters) []models.Excursion {
	season := filters.Season
	if filters.Date != "" {
		if t, err := utils.ParseDate(filters.Date); err == nil {
			season = utils.SeasonForDate(t)
		}
	}
	return c.Filter(func(e models.Excursion) bool {
		if season != "" && e.Season != season {
			return false
		}
		if filters.AgeCategory != "" && !hasPriceFor(e, filters.AgeCategory) {
			return false
		}
		if filters.RecommendedAge != "" && e.RecommendedAge != filters.RecommendedAge {
			return false
		}
		return true
	})
}

// hasPriceFor reports whether the excursion offers a price for the age category.
func hasPriceFor(e models.Excursion, cat models.AgeCategory) bool {
	for _, p := range e.Prices {
		if p.AgeCategory == cat {
			return true
		}
	}
	return false
}

// BySeason returns all excursions of the given season, order preserved.
func (c *ExcursionCatalog) BySeason(season models.Season) []models.Excursion {
	return c.Filter(func(e models.Excursion) bool { return e.Season == season })
}

// DistinctDurations returns the distinct duration strings of the cached
// excursions, in order of first appearance.
func (c *ExcursionCatalog) DistinctDurations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range c.Items() {
		if !seen[e.Duration] {
			seen[e.Duration] = true
			out = append(out, e.Duration)
		}
	}
	return out
}

// SortedDurations returns the distinct durations in display order: whole-day
// values after all others, each group ordered by its leading number.
func (c *ExcursionCatalog) SortedDurations() []string {
	return SortDurations(c.DistinctDurations())
}
