package repository

import (
	"database/sql"
	"fmt"
	"log"

	"aquarium-service/internal/models"

	"github.com/jmoiron/sqlx"
)

type IFishRepository interface {
	SeedCatalog(fish []models.Fish) error
	GetAllFish() ([]models.Fish, error)
	GetFishByID(id string) (*models.Fish, error)
}

type FishRepository struct {
	db *sqlx.DB
}

func NewFishRepository(db *sqlx.DB) IFishRepository {
	return &FishRepository{
		db: db,
	}
}

// SeedCatalog inserts the static catalog when the fish table is empty. The
// catalog is immutable at runtime, so an already-populated table is left
// untouched.
func (r *FishRepository) SeedCatalog(fish []models.Fish) error {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM fish`); err != nil {
		return fmt.Errorf("failed to count fish: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `
		INSERT INTO fish (id, name, species, rarity, description, habitat, diet, points, color)
		VALUES (:id, :name, :species, :rarity, :description, :habitat, :diet, :points, :color)
	`
	for _, f := range fish {
		if _, err := r.db.NamedExec(query, f); err != nil {
			return fmt.Errorf("failed to seed fish %s: %w", f.ID, err)
		}
	}

	log.Printf("Seeded %d fish into catalog", len(fish))
	return nil
}

func (r *FishRepository) GetAllFish() ([]models.Fish, error) {
	var fish []models.Fish
	err := r.db.Select(&fish, `SELECT * FROM fish ORDER BY points, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list fish: %w", err)
	}
	return fish, nil
}

func (r *FishRepository) GetFishByID(id string) (*models.Fish, error) {
	var fish models.Fish
	err := r.db.Get(&fish, `SELECT * FROM fish WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get fish by ID: %w", err)
	}
	return &fish, nil
}
