package services

import (
	"context"
	"log"
	"time"

	"aquarium-service/internal/event"
	"aquarium-service/internal/gacha"
	"aquarium-service/internal/models"
	"aquarium-service/internal/repository"
	"aquarium-service/utils"
)

type IGachaService interface {
	OpenCase(userID string) (*models.GachaResult, error)
	GetStatus(userID string) (*models.GachaStatus, error)
	ResetDailyUsage(userID string) error
}

// GachaService composes the quota tracker, the weighted picker and the
// unlock ledger into the single "open a case" operation.
type GachaService struct {
	statsRepo repository.IStatsRepository
	picker    *gacha.Picker
	publisher *event.UnlockPublisher
	clk       gacha.Clock
}

func NewGachaService(statsRepo repository.IStatsRepository, picker *gacha.Picker, publisher *event.UnlockPublisher) IGachaService {
	return &GachaService{
		statsRepo: statsRepo,
		picker:    picker,
		publisher: publisher,
		clk:       gacha.RealClock{},
	}
}

// OpenCase runs the whole draw as one transaction on the user's stats row:
// consume quota, draw, record the unlock. The quota is spent even when the
// draw turns out to be a duplicate. Returns gacha.ErrQuotaExhausted when the
// user has no cases left today.
func (s *GachaService) OpenCase(userID string) (*models.GachaResult, error) {
	var result models.GachaResult
	var unlockEvt *event.UnlockEvent

	err := s.statsRepo.WithUserLock(userID, func(tx repository.UnlockTx, stats *models.UserStats) error {
		now := s.clk.Now()
		if err := gacha.Consume(stats, now); err != nil {
			return err
		}
		if err := tx.UpdateQuota(stats); err != nil {
			return err
		}

		fish := s.picker.Pick()
		isNew, err := tx.InsertUnlock(userID, fish.ID, now)
		if err != nil {
			return err
		}
		if isNew {
			if err := tx.AddUnlockStats(userID, fish.Points); err != nil {
				return err
			}
			stats.TotalPoints += fish.Points
			stats.TotalFish++
		}

		result = models.GachaResult{
			Fish:        fish,
			IsNew:       isNew,
			TotalPoints: stats.TotalPoints,
		}
		if isNew {
			unlockEvt = &event.UnlockEvent{
				ID:          "E-" + utils.GenerateRandomStringWithLength(6),
				UserID:      userID,
				FishID:      fish.ID,
				FishName:    fish.Name,
				Rarity:      fish.Rarity,
				Points:      fish.Points,
				TotalPoints: stats.TotalPoints,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Best-effort fan-out after commit; a broker failure never undoes a draw.
	if unlockEvt != nil && s.publisher != nil {
		if perr := s.publisher.PublishEvent(context.Background(), *unlockEvt); perr != nil {
			log.Printf("failed to publish unlock event for user %s: %v", userID, perr)
		}
	}

	return &result, nil
}

func (s *GachaService) GetStatus(userID string) (*models.GachaStatus, error) {
	stats, err := s.statsRepo.GetStats(userID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	status := &models.GachaStatus{
		CasesRemaining: gacha.CasesRemaining(stats, now),
	}
	if stats != nil && stats.LastCaseDate != nil && *stats.LastCaseDate == gacha.Today(now) {
		status.NextReset = gacha.NextReset(now).Format(time.RFC3339)
	}
	return status, nil
}

// ResetDailyUsage zeroes today's usage counter and nothing else; totals and
// last_case_date stay as they are. Support/testing hook, not part of the
// daily flow.
func (s *GachaService) ResetDailyUsage(userID string) error {
	return s.statsRepo.ResetDailyUsage(userID)
}
