package services

import (
	"aquarium-service/internal/models"
	"aquarium-service/internal/repository"
)

// LeaderboardLimit caps how many entries the leaderboard returns.
const LeaderboardLimit = 20

type ILeaderboardService interface {
	GetLeaderboard() ([]models.LeaderboardEntry, error)
}

type LeaderboardService struct {
	statsRepo repository.IStatsRepository
}

func NewLeaderboardService(statsRepo repository.IStatsRepository) ILeaderboardService {
	return &LeaderboardService{
		statsRepo: statsRepo,
	}
}

// GetLeaderboard returns the top entries ordered by total points, ties
// broken by distinct fish count.
func (s *LeaderboardService) GetLeaderboard() ([]models.LeaderboardEntry, error) {
	entries, err := s.statsRepo.GetLeaderboard(LeaderboardLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return entries, nil
}
