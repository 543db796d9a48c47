package v1

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/config"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

const callerKey = "caller"

// Claims - полезная нагрузка токена: sub содержит UUID пользователя
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken подписывает HS256-токен для пользователя
func IssueToken(secret string, userID uuid.UUID, role models.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseToken(secret, tokenString string) (models.Caller, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Caller{}, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Caller{}, fmt.Errorf("invalid subject: %w", err)
	}
	switch claims.Role {
	case models.RoleAdmin, models.RoleAgent, models.RoleCitizen:
	default:
		return models.Caller{}, fmt.Errorf("unknown role %q", claims.Role)
	}
	return models.Caller{ID: id, Role: claims.Role}, nil
}

// IdentityMiddleware определяет вызывающего по Bearer-токену.
// Запрос без токена проходит как анонимный, невалидный токен отклоняется.
func IdentityMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := models.Anonymous

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
				return
			}
			parsed, err := parseToken(cfg.JWTSecret, tokenString)
			if err != nil {
				log.WithError(err).Warn("Invalid bearer token")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			caller = parsed
		}

		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" && slices.Contains(cfg.APIKeys, apiKey) {
			caller.APIClient = true
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !slices.Contains(cfg.APIKeys, apiKey) {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		caller := callerFrom(c)
		caller.APIClient = true
		c.Set(callerKey, caller)
		c.Next()
	}
}

// RequireRole пропускает только перечисленные роли
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := callerFrom(c)
		if caller.ID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !slices.Contains(roles, caller.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

func callerFrom(c *gin.Context) models.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(models.Caller); ok {
			return caller
		}
	}
	return models.Anonymous
}
