package models

// PersonBookingField is one person's booking line within an excursion.
type PersonBookingField struct {
	Name           string      `bson:"name" json:"name"`
	AgeCategory    AgeCategory `bson:"ageCategory" json:"ageCategory"`
	ExcursionPrice float64     `bson:"excursionPrice" json:"excursionPrice"`
	SelectedOffers []Offer     `bson:"selectedOffers" json:"selectedOffers"`
}

// CartItem is one booked excursion in a visitor's cart.
type CartItem struct {
	BookingID           string               `bson:"bookingId" json:"bookingId"`
	ExcursionID         string               `bson:"excursionId" json:"excursionId"`
	Title               string               `bson:"title" json:"title"`
	NumberOfPersons     int                  `bson:"numberOfPersons" json:"numberOfPersons"`
	StartDate           string               `bson:"startDate" json:"startDate"` // "YYYY-MM-DD"
	EndDate             string               `bson:"endDate" json:"endDate"`     // "YYYY-MM-DD"
	PersonBookingFields []PersonBookingField `bson:"personBookingFields" json:"personBookingFields"`
}

// Key returns the identity key of the item. Two cart items with the same key
// describe the same booking and may not coexist in a cart.
func (ci CartItem) Key() CartItemKey {
	return CartItemKey{
		ExcursionID: ci.ExcursionID,
		StartDate:   ci.StartDate,
		EndDate:     ci.EndDate,
	}
}

// CartItemKey is the composite identity of a cart item.
type CartItemKey struct {
	ExcursionID string `json:"excursionId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Cart is the aggregate of a visitor's selected bookings, unique by item key.
type Cart struct {
	Items []CartItem `bson:"items" json:"items"`
}
