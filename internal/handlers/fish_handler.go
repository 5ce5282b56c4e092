package handlers

import (
	"errors"
	"log"
	"net/http"

	"aquarium-service/internal/repository"
	"aquarium-service/internal/services"
	"aquarium-service/utils"

	"github.com/gin-gonic/gin"
)

type FishHandler struct {
	fishService services.IFishService
}

func NewFishHandler(fishService services.IFishService) *FishHandler {
	return &FishHandler{
		fishService: fishService,
	}
}

func (h *FishHandler) RegisterRoutes(router *gin.Engine, mw *Middleware) {
	fishGr := router.Group("/api/fish", mw.RequireAuth())

	fishGr.GET("/aquarium", h.GetAquarium)
	fishGr.GET("/all", h.GetAllFish)
	fishGr.GET("/:id", h.GetFishByID)
}

func (h *FishHandler) GetAquarium(c *gin.Context) {
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(h.fishService.GetAquarium()))
}

func (h *FishHandler) GetAllFish(c *gin.Context) {
	fish, err := h.fishService.GetAllFish()
	if err != nil {
		log.Println("internal error:", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(fish))
}

func (h *FishHandler) GetFishByID(c *gin.Context) {
	fish, err := h.fishService.GetFishByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "Fish not found"))
			return
		}
		log.Println("internal error:", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(fish))
}
