package gacha

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
	"time"

	"aquarium-service/internal/catalog"
	"aquarium-service/internal/models"
)

// Picker draws one fish at a time from the catalog, weighted per item by the
// fish's rarity weight. Selection is over individual fish, not rarities: a
// rarity with four members carries four times the aggregate probability of a
// single-member rarity at the same weight.
type Picker struct {
	mu          sync.Mutex
	fish        []models.Fish
	cumulative  []int
	totalWeight int
	rng         *mrand.Rand
}

// NewPicker builds the cumulative weight table once. Pass a nil rng to get a
// crypto-seeded one; tests pass a seeded rng for reproducible draws.
func NewPicker(fish []models.Fish, rng *mrand.Rand) *Picker {
	if rng == nil {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
		} else {
			rng = mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
		}
	}

	p := &Picker{
		fish: fish,
		rng:  rng,
	}

	p.cumulative = make([]int, len(fish))
	totalWeight := 0
	for i, f := range fish {
		w := catalog.Weight(f.Rarity)
		if w < 1 {
			w = 1
		}
		totalWeight += w
		p.cumulative[i] = totalWeight
	}
	p.totalWeight = totalWeight
	return p
}

// Pick returns one fish. The catalog is non-empty at startup, so Pick never
// fails. Safe for concurrent use; math/rand.Rand is not.
func (p *Picker) Pick() models.Fish {
	p.mu.Lock()
	roll := p.rng.Intn(p.totalWeight)
	p.mu.Unlock()

	// binary search for the first cumulative weight above the roll
	lo, hi := 0, len(p.cumulative)-1
	for lo < hi {
		mid := (lo + hi) >> 1
		if roll < p.cumulative[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return p.fish[lo]
}
