package services

import (
	"aquarium-service/internal/gacha"
	"aquarium-service/internal/models"
	"aquarium-service/internal/repository"
)

type IFishService interface {
	GetAllFish() ([]models.Fish, error)
	GetFishByID(id string) (*models.Fish, error)
	GetAquarium() []models.AquariumFish
}

type FishService struct {
	fishRepo repository.IFishRepository
	aquarium *gacha.Aquarium
}

func NewFishService(fishRepo repository.IFishRepository, aquarium *gacha.Aquarium) IFishService {
	return &FishService{
		fishRepo: fishRepo,
		aquarium: aquarium,
	}
}

func (s *FishService) GetAllFish() ([]models.Fish, error) {
	return s.fishRepo.GetAllFish()
}

func (s *FishService) GetFishByID(id string) (*models.Fish, error) {
	return s.fishRepo.GetFishByID(id)
}

func (s *FishService) GetAquarium() []models.AquariumFish {
	return s.aquarium.Current()
}
