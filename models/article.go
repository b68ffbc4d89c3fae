package models

// Article is an editorial piece from the catalog, optionally linked to an
// excursion. Immutable once loaded. LinkedExcursionID is a soft reference
// into the excursion catalog and is not enforced.
type Article struct {
	ID                string `bson:"id" json:"id"`
	Title             string `bson:"title" json:"title"`
	Season            Season `bson:"season" json:"season"`
	RecommendedAge    string `bson:"recommendedAge" json:"recommendedAge"`
	LinkedExcursionID string `bson:"linkedExcursionId" json:"linkedExcursionId"`
	Duration          string `bson:"duration" json:"duration"`
	Content           string `bson:"content" json:"content"`
}

// ArticleFilters holds optional equality filters for article queries.
type ArticleFilters struct {
	Season         Season `form:"season" json:"season"`
	RecommendedAge string `form:"recommendedAge" json:"recommendedAge"`
}
