package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	cartRepo "utflykt/database/repository/cart"
	"utflykt/handlers"
	"utflykt/models"
	"utflykt/routes"
	"utflykt/services/cart"

	"github.com/gin-gonic/gin"
)

func newCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := cart.NewDefaultCartService(cartRepo.NewMemoryCartRepo(), false)
	routes.RegisterCartRoutes(r, handlers.NewCartHandler(svc))
	return r
}

func putItem(t *testing.T, r *gin.Engine, cartID string, item models.CartItem) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(item)
	req := httptest.NewRequest(http.MethodPut, "/api/cart/"+cartID+"/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getCart(t *testing.T, r *gin.Engine, cartID string) map[string]json.RawMessage {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/cart/"+cartID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET cart returned %d", w.Code)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse cart response: %v", err)
	}
	return resp
}

func TestCartFlow(t *testing.T) {
	r := newCartRouter()
	item := models.CartItem{
		ExcursionID:     "e1",
		Title:           "Husky tour",
		NumberOfPersons: 2,
		StartDate:       "2025-06-01",
		EndDate:         "2025-06-03",
	}

	// Add, then update the same booking with more persons.
	if w := putItem(t, r, "visitor1", item); w.Code != http.StatusOK {
		t.Fatalf("PUT item returned %d: %s", w.Code, w.Body.String())
	}
	item.NumberOfPersons = 4
	if w := putItem(t, r, "visitor1", item); w.Code != http.StatusOK {
		t.Fatalf("second PUT returned %d", w.Code)
	}

	resp := getCart(t, r, "visitor1")
	var items []models.CartItem
	json.Unmarshal(resp["items"], &items)
	if len(items) != 1 || items[0].NumberOfPersons != 4 {
		t.Fatalf("expected one item with 4 persons, got %+v", items)
	}
	var count int
	json.Unmarshal(resp["itemCount"], &count)
	if count != 1 {
		t.Errorf("itemCount = %d, want 1", count)
	}

	// Remove it, twice. Both succeed.
	key, _ := json.Marshal(models.CartItemKey{ExcursionID: "e1", StartDate: "2025-06-01", EndDate: "2025-06-03"})
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/api/cart/visitor1/items", bytes.NewReader(key))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("DELETE item attempt %d returned %d", i+1, w.Code)
		}
	}

	resp = getCart(t, r, "visitor1")
	var isEmpty bool
	json.Unmarshal(resp["isEmpty"], &isEmpty)
	if !isEmpty {
		t.Error("cart should be empty after removal")
	}
}

func TestClearCartEndpoint(t *testing.T) {
	r := newCartRouter()
	putItem(t, r, "v", models.CartItem{ExcursionID: "e2", StartDate: "2025-05-10", EndDate: "2025-05-10"})

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/v", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("DELETE cart returned %d", w.Code)
	}

	resp := getCart(t, r, "v")
	var count int
	json.Unmarshal(resp["itemCount"], &count)
	if count != 0 {
		t.Errorf("itemCount = %d after clear, want 0", count)
	}
}

func TestUpsertRejectsItemWithoutKeyFields(t *testing.T) {
	r := newCartRouter()
	w := putItem(t, r, "v", models.CartItem{Title: "No excursion"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an item without excursionId, got %d", w.Code)
	}
}
