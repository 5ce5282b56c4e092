package handlers

import (
	"errors"
	"log"
	"net/http"

	"aquarium-service/internal/gacha"
	"aquarium-service/internal/services"
	"aquarium-service/utils"

	"github.com/gin-gonic/gin"
)

type GachaHandler struct {
	gachaService services.IGachaService
}

func NewGachaHandler(gachaService services.IGachaService) *GachaHandler {
	return &GachaHandler{
		gachaService: gachaService,
	}
}

func (h *GachaHandler) RegisterRoutes(router *gin.Engine, mw *Middleware) {
	gachaGr := router.Group("/api/gacha", mw.RequireAuth())

	gachaGr.GET("/status", h.GetStatus)
	gachaGr.POST("/open", h.OpenCase)
	gachaGr.POST("/reset", h.ResetDailyUsage)
}

func (h *GachaHandler) GetStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	status, err := h.gachaService.GetStatus(userID)
	if err != nil {
		log.Println("internal error:", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(status))
}

func (h *GachaHandler) OpenCase(c *gin.Context) {
	userID := c.GetString("user_id")

	result, err := h.gachaService.OpenCase(userID)
	if err != nil {
		if errors.Is(err, gacha.ErrQuotaExhausted) {
			c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("NO_CASES_REMAINING", "No cases remaining today"))
			return
		}
		log.Printf("open case failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(result))
}

func (h *GachaHandler) ResetDailyUsage(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.gachaService.ResetDailyUsage(userID); err != nil {
		log.Printf("reset daily usage failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"message": "Cases reset successfully"}))
}
