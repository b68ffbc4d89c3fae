package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeFetcher serves canned documents and counts fetches.
type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	delay time.Duration
	data  []byte
	err   error
}

func (f *fakeFetcher) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

const excursionDoc = `{"excursion":[
	{"id":"e1","title":"Husky tour","season":"Winter","duration":"2",
	 "prices":[{"ageCategory":"Adult 13-64","price":1200},{"ageCategory":"Child 0-12","price":600}]},
	{"id":"e2","title":"Kayak trip","season":"Summer","duration":"10",
	 "prices":[{"ageCategory":"Adult 13-64","price":450}]},
	{"id":"e3","title":"Mountain hike","season":"Summer","duration":"1 day",
	 "prices":[{"ageCategory":"Adult 13-64","price":800},{"ageCategory":"Senior 65+","price":700}]}
]}`

func newTestExcursionCatalog(f *fakeFetcher) *ExcursionCatalog {
	return NewExcursionCatalog(f, "http://example.test/data/jsonData/excursion.json")
}

func TestLoadCachesAfterFirstFetch(t *testing.T) {
	fetcher := &fakeFetcher{data: []byte(excursionDoc)}
	cat := newTestExcursionCatalog(fetcher)

	first := cat.Load(context.Background())
	second := cat.Load(context.Background())

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 excursions from both loads, got %d and %d", len(first), len(second))
	}
	if got := fetcher.callCount(); got != 1 {
		t.Errorf("expected exactly 1 fetch after two sequential loads, got %d", got)
	}
	if cat.Err() != "" {
		t.Errorf("expected no load error, got %q", cat.Err())
	}
}

func TestLoadFailureLeavesCacheEmptyAndRetries(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("failed to fetch catalog document: 503 Service Unavailable")}
	cat := newTestExcursionCatalog(fetcher)

	items := cat.Load(context.Background())
	if len(items) != 0 {
		t.Fatalf("expected empty list on fetch failure, got %d items", len(items))
	}
	if cat.Err() == "" {
		t.Error("expected load error to be recorded")
	}
	if cat.Loading() {
		t.Error("loading flag not reset after failed load")
	}

	// The cache was not poisoned: a later load attempts the fetch again and
	// succeeds once the upstream recovers.
	fetcher.mu.Lock()
	fetcher.err = nil
	fetcher.data = []byte(excursionDoc)
	fetcher.mu.Unlock()

	items = cat.Load(context.Background())
	if len(items) != 3 {
		t.Fatalf("expected 3 excursions after retry, got %d", len(items))
	}
	if got := fetcher.callCount(); got != 2 {
		t.Errorf("expected 2 fetches total, got %d", got)
	}
}

func TestLoadParseFailureRecorded(t *testing.T) {
	fetcher := &fakeFetcher{data: []byte(`{"excursion":`)}
	cat := newTestExcursionCatalog(fetcher)

	items := cat.Load(context.Background())
	if len(items) != 0 {
		t.Fatalf("expected empty list on parse failure, got %d items", len(items))
	}
	if cat.Err() == "" {
		t.Error("expected parse error to be recorded")
	}
}

func TestConcurrentLoadsShareOneFetch(t *testing.T) {
	fetcher := &fakeFetcher{data: []byte(excursionDoc), delay: 50 * time.Millisecond}
	cat := newTestExcursionCatalog(fetcher)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := cat.Load(context.Background()); len(got) != 3 {
				t.Errorf("concurrent load returned %d items, want 3", len(got))
			}
		}()
	}
	wg.Wait()

	if got := fetcher.callCount(); got != 1 {
		t.Errorf("expected concurrent loads to share one fetch, got %d", got)
	}
}

func TestGetByID(t *testing.T) {
	fetcher := &fakeFetcher{data: []byte(excursionDoc)}
	cat := newTestExcursionCatalog(fetcher)
	cat.Load(context.Background())

	exc, err := cat.GetByID("e2")
	if err != nil {
		t.Fatalf("GetByID(e2) returned error: %v", err)
	}
	if exc.Title != "Kayak trip" {
		t.Errorf("GetByID(e2) title = %q, want %q", exc.Title, "Kayak trip")
	}

	if _, err := cat.GetByID("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(nope) error = %v, want ErrNotFound", err)
	}
}
