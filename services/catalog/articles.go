package catalog

import (
	"encoding/json"
	"fmt"

	"utflykt/models"
)

// ArticleCatalog is the load-once catalog of editorial articles.
type ArticleCatalog struct {
	*Store[models.Article]
}

// articleDocument mirrors the upstream JSON envelope.
type articleDocument struct {
	Articles []models.Article `json:"articles"`
}

// NewArticleCatalog creates the article catalog backed by the given fetcher.
func NewArticleCatalog(fetcher DocumentFetcher, url string) *ArticleCatalog {
	decode := func(data []byte) ([]models.Article, error) {
		var doc articleDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid article document: %w", err)
		}
		return doc.Articles, nil
	}
	idOf := func(a models.Article) string { return a.ID }
	return &ArticleCatalog{Store: NewStore("articles", url, fetcher, decode, idOf)}
}

// FilterArticles returns all articles matching the AND-combination of the
// given optional filters; an absent filter field matches everything.
func (c *ArticleCatalog) FilterArticles(filters models.ArticleFilters) []models.Article {
	return c.Filter(func(a models.Article) bool {
		if filters.Season != "" && a.Season != filters.Season {
			return false
		}
		if filters.RecommendedAge != "" && a.RecommendedAge != filters.RecommendedAge {
			return false
		}
		return true
	})
}

// ByExcursionID returns all articles linked to the given excursion. The link
// is a soft reference; an unknown excursion ID simply yields no articles.
func (c *ArticleCatalog) ByExcursionID(excursionID string) []models.Article {
	return c.Filter(func(a models.Article) bool {
		return a.LinkedExcursionID == excursionID
	})
}
