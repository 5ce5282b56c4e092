package catalog

import (
	"testing"

	"aquarium-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range All() {
		assert.False(t, seen[f.ID], "duplicate fish id %s", f.ID)
		seen[f.ID] = true
	}
}

func TestCatalog_EveryRarityWeighted(t *testing.T) {
	for _, f := range All() {
		assert.Greater(t, Weight(f.Rarity), 0, "fish %s rarity %s has no weight", f.ID, f.Rarity)
	}
}

func TestCatalog_PointsPositive(t *testing.T) {
	for _, f := range All() {
		assert.Greater(t, f.Points, 0, "fish %s must award points", f.ID)
	}
}

func TestByID(t *testing.T) {
	f, ok := ByID("1")
	assert.True(t, ok)
	assert.Equal(t, "Clownfish", f.Name)
	assert.Equal(t, models.RarityCommon, f.Rarity)

	_, ok = ByID("999")
	assert.False(t, ok)
}
