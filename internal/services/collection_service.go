package services

import (
	"aquarium-service/internal/models"
	"aquarium-service/internal/repository"
)

type ICollectionService interface {
	GetCollection(userID string) ([]models.Fish, error)
	GetStats(userID string) (*models.UserStatsResponse, error)
}

type CollectionService struct {
	statsRepo repository.IStatsRepository
}

func NewCollectionService(statsRepo repository.IStatsRepository) ICollectionService {
	return &CollectionService{
		statsRepo: statsRepo,
	}
}

func (s *CollectionService) GetCollection(userID string) ([]models.Fish, error) {
	return s.statsRepo.GetCollection(userID)
}

// GetStats reports the collection totals. A user with no stats row yet reads
// as all zeros.
func (s *CollectionService) GetStats(userID string) (*models.UserStatsResponse, error) {
	stats, err := s.statsRepo.GetStats(userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return &models.UserStatsResponse{}, nil
	}
	return &models.UserStatsResponse{
		TotalPoints: stats.TotalPoints,
		TotalFish:   stats.TotalFish,
	}, nil
}
