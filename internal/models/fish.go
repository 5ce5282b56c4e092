package models

import "time"

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythical  Rarity = "mythical"
)

type Fish struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Species     string `json:"species" db:"species"`
	Rarity      Rarity `json:"rarity" db:"rarity"`
	Description string `json:"description" db:"description"`
	Habitat     string `json:"habitat" db:"habitat"`
	Diet        string `json:"diet" db:"diet"`
	Points      int    `json:"points" db:"points"`
	Color       string `json:"color" db:"color"`
}

// UserFishUnlock records that a user owns a fish. One row per (user, fish)
// pair, never updated or deleted.
type UserFishUnlock struct {
	UserID     string    `json:"user_id" db:"user_id"`
	FishID     string    `json:"fish_id" db:"fish_id"`
	UnlockedAt time.Time `json:"unlocked_at" db:"unlocked_at"`
}

// AquariumFish is a catalog fish enriched with a synthetic position for the
// decorative aquarium view. Position is [x, y, z].
type AquariumFish struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Species  string    `json:"species"`
	Rarity   Rarity    `json:"rarity"`
	Color    string    `json:"color"`
	Position []float64 `json:"position"`
}
