package services

import (
	"testing"

	"aquarium-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetStats_FreshUserReadsAsZeros(t *testing.T) {
	repo := newFakeStatsRepo()
	service := &CollectionService{statsRepo: repo}

	stats, err := service.GetStats("nobody")
	assert.NoError(t, err)
	assert.Equal(t, &models.UserStatsResponse{}, stats)
}

func TestGetStats_ExistingUser(t *testing.T) {
	repo := newFakeStatsRepo()
	repo.stats["u1"] = &models.UserStats{UserID: "u1", TotalPoints: 310, TotalFish: 7}
	service := &CollectionService{statsRepo: repo}

	stats, err := service.GetStats("u1")
	assert.NoError(t, err)
	assert.Equal(t, 310, stats.TotalPoints)
	assert.Equal(t, 7, stats.TotalFish)
}

func TestGetCollection_GrowsWithUnlocks(t *testing.T) {
	repo := newFakeStatsRepo()
	service := &CollectionService{statsRepo: repo}

	collection, err := service.GetCollection("u1")
	assert.NoError(t, err)
	assert.Empty(t, collection)

	repo.unlocks["u1"] = map[string]bool{"1": true, "3": true}
	collection, err = service.GetCollection("u1")
	assert.NoError(t, err)
	assert.Len(t, collection, 2)
}

func TestGetLeaderboard_EmptyIsNotNil(t *testing.T) {
	repo := newFakeStatsRepo()
	service := &LeaderboardService{statsRepo: repo}

	entries, err := service.GetLeaderboard()
	assert.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestGetLeaderboard_PointsDescThenFishDesc(t *testing.T) {
	repo := newFakeStatsRepo()
	repo.leaderboard = []models.LeaderboardEntry{
		{UserID: "a", TotalPoints: 100, TotalFish: 3},
		{UserID: "b", TotalPoints: 100, TotalFish: 5},
		{UserID: "c", TotalPoints: 50, TotalFish: 10},
	}
	service := &LeaderboardService{statsRepo: repo}

	entries, err := service.GetLeaderboard()
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "b", entries[0].UserID, "tie on points goes to more fish")
	assert.Equal(t, "a", entries[1].UserID)
	assert.Equal(t, "c", entries[2].UserID)
}

func TestGetLeaderboard_CapsAtLimit(t *testing.T) {
	repo := newFakeStatsRepo()
	for i := 0; i < LeaderboardLimit+5; i++ {
		repo.leaderboard = append(repo.leaderboard, models.LeaderboardEntry{UserID: "u"})
	}
	service := &LeaderboardService{statsRepo: repo}

	entries, err := service.GetLeaderboard()
	assert.NoError(t, err)
	assert.Len(t, entries, LeaderboardLimit)
}
