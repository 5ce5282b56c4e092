package event

import "aquarium-service/internal/models"

const UnlockQueue string = "unlock_events"

// UnlockEvent is published whenever a draw unlocks a fish the user did not
// own before. Downstream consumers (notification fan-out, activity feeds)
// read it off the unlock_events queue.
type UnlockEvent struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	FishID      string        `json:"fish_id"`
	FishName    string        `json:"fish_name"`
	Rarity      models.Rarity `json:"rarity"`
	Points      int           `json:"points"`
	TotalPoints int           `json:"total_points"`
}
