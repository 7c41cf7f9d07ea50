//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"gin-storefront/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	london := time.FixedZone("BST", 3600)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, london)

	c := clock.NewMockClock(start)
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.True(t, c.Now().Equal(start))

	c.Add(24 * time.Hour)
	assert.Equal(t, time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC), c.Now())

	c.Set(time.Date(2026, 1, 1, 0, 0, 0, 0, london))
	assert.Equal(t, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC), c.Now())
}

func TestMockClock_ConcurrentAdd(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(time.Minute)
			_ = c.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, start.Add(50*time.Minute), c.Now())
}

func TestRealClock_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, clock.NewRealClock().Now().Location())
}
