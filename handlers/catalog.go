package handlers

import (
	"net/http"

	"utflykt/models"
	"utflykt/services/catalog"
	"utflykt/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves read-only catalog queries for the storefront.
type CatalogHandler struct {
	Excursions *catalog.ExcursionCatalog
	Articles   *catalog.ArticleCatalog
}

// NewCatalogHandler creates a CatalogHandler over the given catalogs.
func NewCatalogHandler(excursions *catalog.ExcursionCatalog, articles *catalog.ArticleCatalog) *CatalogHandler {
	return &CatalogHandler{Excursions: excursions, Articles: articles}
}

// ListExcursionsHandler returns excursions, optionally filtered by season,
// age category, recommended age or a calendar date (which derives a season).
func (h *CatalogHandler) ListExcursionsHandler(c *gin.Context) {
	var filters models.ExcursionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filters", err.Error())
		return
	}
	items := h.Excursions.FilterExcursions(filters)
	c.JSON(http.StatusOK, gin.H{"excursions": items, "error": h.Excursions.Err()})
}

// GetExcursionByIDHandler returns a single excursion by ID.
func (h *CatalogHandler) GetExcursionByIDHandler(c *gin.Context) {
	id := c.Param("id")
	exc, err := h.Excursions.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "excursion not found", id)
		return
	}
	c.JSON(http.StatusOK, exc)
}

// GetDurationsHandler returns the distinct excursion durations. With
// ?sorted=true they come in display order (whole-day values last).
func (h *CatalogHandler) GetDurationsHandler(c *gin.Context) {
	var durations []string
	if c.Query("sorted") == "true" {
		durations = h.Excursions.SortedDurations()
	} else {
		durations = h.Excursions.DistinctDurations()
	}
	c.JSON(http.StatusOK, gin.H{"durations": durations})
}

// ListArticlesHandler returns articles, optionally filtered.
func (h *CatalogHandler) ListArticlesHandler(c *gin.Context) {
	var filters models.ArticleFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filters", err.Error())
		return
	}
	items := h.Articles.FilterArticles(filters)
	c.JSON(http.StatusOK, gin.H{"articles": items, "error": h.Articles.Err()})
}

// GetArticleByIDHandler returns a single article by ID.
func (h *CatalogHandler) GetArticleByIDHandler(c *gin.Context) {
	id := c.Param("id")
	article, err := h.Articles.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "article not found", id)
		return
	}
	c.JSON(http.StatusOK, article)
}

// GetArticlesByExcursionHandler returns the articles linked to an excursion.
func (h *CatalogHandler) GetArticlesByExcursionHandler(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"articles": h.Articles.ByExcursionID(id)})
}
