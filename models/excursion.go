package models

// Season is the season an excursion or article belongs to.
type Season string

const (
	SeasonWinter Season = "Winter"
	SeasonSummer Season = "Summer"
)

// AgeCategory buckets visitors into the pricing groups used by the catalog.
type AgeCategory string

const (
	AgeChild  AgeCategory = "Child 0-12"
	AgeAdult  AgeCategory = "Adult 13-64"
	AgeSenior AgeCategory = "Senior 65+"
)

// Offer is an optional add-on priced per booking.
type Offer struct {
	ID    string  `bson:"id" json:"id"`
	Title string  `bson:"title" json:"title"`
	Price float64 `bson:"price" json:"price"`
}

// PriceOption is the price of one age category for an excursion.
type PriceOption struct {
	AgeCategory AgeCategory `bson:"ageCategory" json:"ageCategory"`
	Price       float64     `bson:"price" json:"price"`
}

// Excursion is a bookable excursion from the catalog. Immutable once loaded.
type Excursion struct {
	ID             string        `bson:"id" json:"id"`
	Title          string        `bson:"title" json:"title"`
	Season         Season        `bson:"season" json:"season"`
	Prices         []PriceOption `bson:"prices" json:"prices"`
	Description    string        `bson:"description" json:"description"`
	Details        string        `bson:"details" json:"details"`
	RecommendedAge string        `bson:"recommendedAge" json:"recommendedAge"`
	Duration       string        `bson:"duration" json:"duration"` // e.g. "2", "10", "1 day"
	Offers         []Offer       `bson:"offers" json:"offers"`
}

// ExcursionFilters holds optional equality filters for excursion queries.
// A zero field matches everything. When Date is set (YYYY-MM-DD), the season
// derived from it is matched against the stored season.
type ExcursionFilters struct {
	Season         Season      `form:"season" json:"season"`
	AgeCategory    AgeCategory `form:"ageCategory" json:"ageCategory"`
	RecommendedAge string      `form:"recommendedAge" json:"recommendedAge"`
	Date           string      `form:"date" json:"date"`
}
