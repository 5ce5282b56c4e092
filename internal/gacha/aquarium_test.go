package gacha

import (
	mrand "math/rand"
	"testing"
	"time"

	"aquarium-service/internal/catalog"
	"aquarium-service/internal/models"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newTestAquarium(fish []models.Fish, seed int64, clk Clock) *Aquarium {
	return NewAquarium(fish, mrand.New(mrand.NewSource(seed)), clk)
}

func TestAquarium_StableWithinInterval(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
	a := newTestAquarium(catalog.All(), 1, clk)

	first := a.Current()
	clk.now = clk.now.Add(29 * time.Minute)
	second := a.Current()

	assert.Equal(t, first, second, "snapshot must not change within the refresh interval")
}

func TestAquarium_RefreshesAfterInterval(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
	a := newTestAquarium(catalog.All(), 1, clk)

	first := a.Current()
	clk.now = clk.now.Add(31 * time.Minute)
	second := a.Current()

	// a new sample was drawn; with fresh random positions the snapshots
	// cannot be identical
	assert.NotEqual(t, first, second)
}

func TestAquarium_SampleSizeAndUniqueness(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
	a := newTestAquarium(catalog.All(), 3, clk)

	sample := a.Current()
	assert.Len(t, sample, AquariumSampleSize)

	seen := make(map[string]bool)
	for _, f := range sample {
		assert.False(t, seen[f.ID], "duplicate fish %s in one sample", f.ID)
		seen[f.ID] = true
	}
}

func TestAquarium_SmallCatalog(t *testing.T) {
	small := catalog.All()[:5]
	clk := &fakeClock{now: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
	a := newTestAquarium(small, 3, clk)

	assert.Len(t, a.Current(), 5)
}

func TestAquarium_PositionsWithinBounds(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
	a := newTestAquarium(catalog.All(), 9, clk)

	for _, f := range a.Current() {
		assert.Len(t, f.Position, 3)
		assert.GreaterOrEqual(t, f.Position[0], -8.0)
		assert.LessOrEqual(t, f.Position[0], 8.0)
		assert.GreaterOrEqual(t, f.Position[1], -4.0)
		assert.LessOrEqual(t, f.Position[1], 4.0)
		assert.GreaterOrEqual(t, f.Position[2], -3.0)
		assert.LessOrEqual(t, f.Position[2], 3.0)
	}
}
