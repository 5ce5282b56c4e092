package handlers

import (
	"log"
	"net/http"
	"strings"

	"aquarium-service/internal/services"
	"aquarium-service/utils"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	jwtService     *services.JWTService
	sessionService *services.SessionService
}

func NewMiddleware(jwtService *services.JWTService, sessionService *services.SessionService) *Middleware {
	return &Middleware{
		jwtService:     jwtService,
		sessionService: sessionService,
	}
}

// RequireAuth validates the bearer token and its backing session, then
// injects user_id and email into the request context.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.CreateErrorResponse("MISSING_TOKEN", "authorization header required"))
			return
		}

		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		claims, err := m.jwtService.VerifyToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.CreateErrorResponse("INVALID_TOKEN", "token validation failed"))
			return
		}

		sessions, err := m.sessionService.GetUserSessions(c, claims.UserID)
		if err != nil {
			log.Printf("Failed to retrieve user sessions: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.CreateErrorResponse("SESSION_CHECK_FAILED", "failed to check user session"))
			return
		}

		isSessionValid := false
		for _, session := range sessions {
			if session.TokenHash == tokenString && session.IsActive {
				isSessionValid = true
				break
			}
		}
		if !isSessionValid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.CreateErrorResponse("SESSION_INVALID", "no session found or session invalid"))
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
