package catalog

import (
	"context"
	"sync"

	"utflykt/utils"
)

// Warmable is any catalog the startup loader can populate.
type Warmable interface {
	Warm(ctx context.Context)
	Name() string
}

// Loader populates every registered catalog concurrently at process start.
// Each catalog swallows its own load failure into its error state, so one
// failing catalog never blocks or fails the others.
type Loader struct {
	catalogs []Warmable
}

// NewLoader creates a startup loader over the given catalogs.
func NewLoader(catalogs ...Warmable) *Loader {
	return &Loader{catalogs: catalogs}
}

// LoadAll triggers every catalog's initial load and waits for all of them to
// settle before returning.
func (l *Loader) LoadAll(ctx context.Context) {
	logger := utils.GetLogger()
	var wg sync.WaitGroup
	for _, c := range l.catalogs {
		wg.Add(1)
		go func(c Warmable) {
			defer wg.Done()
			c.Warm(ctx)
		}(c)
	}
	wg.Wait()
	logger.Sugar().Infof("Startup loader finished warming %d catalogs", len(l.catalogs))
}
