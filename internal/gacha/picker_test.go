package gacha

import (
	mrand "math/rand"
	"testing"

	"aquarium-service/internal/catalog"
	"aquarium-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPicker_SingleFish(t *testing.T) {
	fish := []models.Fish{{ID: "1", Name: "Clownfish", Rarity: models.RarityCommon}}
	p := NewPicker(fish, mrand.New(mrand.NewSource(1)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, "1", p.Pick().ID)
	}
}

// Selection is per item: each fish's probability is its rarity weight over
// the sum of every fish's weight, so a rarity's aggregate frequency scales
// with its member count.
func TestPicker_RarityDistribution(t *testing.T) {
	all := catalog.All()
	p := NewPicker(all, mrand.New(mrand.NewSource(42)))

	totalWeight := 0
	expected := make(map[models.Rarity]float64)
	for _, f := range all {
		w := catalog.Weight(f.Rarity)
		totalWeight += w
		expected[f.Rarity] += float64(w)
	}

	const draws = 200000
	counts := make(map[models.Rarity]int)
	for i := 0; i < draws; i++ {
		counts[p.Pick().Rarity]++
	}

	for rarity, weightSum := range expected {
		want := weightSum / float64(totalWeight)
		got := float64(counts[rarity]) / float64(draws)
		assert.InDelta(t, want, got, 0.01, "rarity %s frequency", rarity)
	}
}

func TestPicker_EveryFishReachable(t *testing.T) {
	all := catalog.All()
	p := NewPicker(all, mrand.New(mrand.NewSource(7)))

	seen := make(map[string]bool)
	for i := 0; i < 200000; i++ {
		seen[p.Pick().ID] = true
	}

	for _, f := range all {
		assert.True(t, seen[f.ID], "fish %s (%s) never drawn", f.ID, f.Rarity)
	}
}
