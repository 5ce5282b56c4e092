package gacha

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
	"time"

	"aquarium-service/internal/models"
)

const (
	// AquariumSampleSize caps how many fish appear in one aquarium snapshot.
	AquariumSampleSize = 8
	// AquariumRefreshInterval is how long a snapshot is served before a new
	// sample is drawn.
	AquariumRefreshInterval = 30 * time.Minute
)

// Aquarium serves a cached random sample of the catalog with synthetic 3-D
// positions. The snapshot is replaced wholly on refresh and never mutated in
// place, so concurrent readers see either the old or the new sample, and a
// client polling within the refresh interval sees stable positions.
type Aquarium struct {
	mu       sync.Mutex
	fish     []models.Fish
	rng      *mrand.Rand
	clk      Clock
	interval time.Duration

	cached      []models.AquariumFish
	generatedAt time.Time
}

func NewAquarium(fish []models.Fish, rng *mrand.Rand, clk Clock) *Aquarium {
	if rng == nil {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
		} else {
			rng = mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
		}
	}
	if clk == nil {
		clk = RealClock{}
	}
	return &Aquarium{
		fish:     fish,
		rng:      rng,
		clk:      clk,
		interval: AquariumRefreshInterval,
	}
}

// Current returns the active snapshot, refreshing it first when the cache is
// empty or older than the refresh interval. Callers must not modify the
// returned slice.
func (a *Aquarium) Current() []models.AquariumFish {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.clk.Now()
	if a.generatedAt.IsZero() || now.Sub(a.generatedAt) > a.interval {
		a.cached = a.sample()
		a.generatedAt = now
	}
	return a.cached
}

// sample draws up to AquariumSampleSize distinct fish without replacement and
// assigns each a fresh uniform position. Caller holds a.mu.
func (a *Aquarium) sample() []models.AquariumFish {
	n := AquariumSampleSize
	if len(a.fish) < n {
		n = len(a.fish)
	}

	out := make([]models.AquariumFish, 0, n)
	for _, idx := range a.rng.Perm(len(a.fish))[:n] {
		f := a.fish[idx]
		out = append(out, models.AquariumFish{
			ID:      f.ID,
			Name:    f.Name,
			Species: f.Species,
			Rarity:  f.Rarity,
			Color:   f.Color,
			Position: []float64{
				a.uniform(-8, 8),
				a.uniform(-4, 4),
				a.uniform(-3, 3),
			},
		})
	}
	return out
}

func (a *Aquarium) uniform(min, max float64) float64 {
	return min + a.rng.Float64()*(max-min)
}
