package handlers

import (
	"log"
	"net/http"
	"strings"

	"aquarium-service/internal/models"
	"aquarium-service/internal/services"
	"aquarium-service/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService services.IUserService
}

func NewAuthHandler(userService services.IUserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

func (a *AuthHandler) RegisterRoutes(router *gin.Engine) {
	authGr := router.Group("/api/auth")

	authGr.POST("/register", a.Register)
	authGr.POST("/login", a.Login)
}

// Register handles user registration
func (a *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Invalid register request format: %v", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "Invalid request format"))
		return
	}

	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("VALIDATION_ERROR", "password must be at least 8 characters"))
		return
	}

	user, token, err := a.userService.RegisterNewUser(req.Email, req.Password, a.getDeviceInfo(c), a.getClientIP(c))
	if err != nil {
		log.Printf("Registration failed for %s: %v", req.Email, err)

		statusCode, errorCode := a.mapRegisterError(err)
		c.JSON(statusCode, utils.CreateErrorResponse(errorCode, "Registration failed"))
		return
	}

	log.Printf("Successful registration for user %s", user.ID)
	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(models.TokenResponse{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
	}))
}

// Login handles user authentication
func (a *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Invalid login request format: %v", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "Invalid request format"))
		return
	}

	user, _, token, err := a.userService.Login(req.Email, req.Password, a.getDeviceInfo(c), a.getClientIP(c))
	if err != nil {
		log.Printf("Login failed for %s: %v", req.Email, err)

		statusCode, errorCode := a.mapLoginError(err)
		c.JSON(statusCode, utils.CreateErrorResponse(errorCode, "Login failed"))
		return
	}

	log.Printf("Successful login for user %s", user.ID)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(models.TokenResponse{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
	}))
}

func (a *AuthHandler) getDeviceInfo(c *gin.Context) string {
	userAgent := c.GetHeader("User-Agent")
	if userAgent == "" {
		userAgent = "Unknown Device"
	}
	return userAgent
}

func (a *AuthHandler) getClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if ips := strings.Split(xff, ","); len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	return c.ClientIP()
}

// mapLoginError maps service layer errors to HTTP responses
func (a *AuthHandler) mapLoginError(err error) (int, string) {
	errorMsg := err.Error()

	switch {
	case strings.Contains(errorMsg, "invalid password"):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS"
	case strings.Contains(errorMsg, "email or password incorrect"):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// mapRegisterError maps service layer errors to HTTP responses
func (a *AuthHandler) mapRegisterError(err error) (int, string) {
	errorMsg := err.Error()

	switch {
	case strings.Contains(errorMsg, "already registered"):
		return http.StatusBadRequest, "EMAIL_ALREADY_REGISTERED"
	case strings.Contains(errorMsg, "creating new user"):
		return http.StatusConflict, "USER_ALREADY_EXISTS"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
