package handlers

import (
	"log"
	"net/http"

	"aquarium-service/internal/services"
	"aquarium-service/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	collectionService  services.ICollectionService
	leaderboardService services.ILeaderboardService
}

func NewUserHandler(collectionService services.ICollectionService, leaderboardService services.ILeaderboardService) *UserHandler {
	return &UserHandler{
		collectionService:  collectionService,
		leaderboardService: leaderboardService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine, mw *Middleware) {
	userGr := router.Group("/api/user", mw.RequireAuth())
	userGr.GET("/collection", h.GetCollection)
	userGr.GET("/stats", h.GetStats)

	router.GET("/api/leaderboard", mw.RequireAuth(), h.GetLeaderboard)
}

func (h *UserHandler) GetCollection(c *gin.Context) {
	userID := c.GetString("user_id")

	fish, err := h.collectionService.GetCollection(userID)
	if err != nil {
		log.Println("internal error:", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(fish))
}

func (h *UserHandler) GetStats(c *gin.Context) {
	userID := c.GetString("user_id")

	stats, err := h.collectionService.GetStats(userID)
	if err != nil {
		log.Println("internal error:", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(stats))
}

func (h *UserHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.leaderboardService.GetLeaderboard()
	if err != nil {
		log.Println("internal error:", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(entries))
}
