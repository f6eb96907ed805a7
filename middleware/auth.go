// middleware/auth.go

package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edulock/sebgate/config"
	logger "github.com/edulock/sebgate/logging"
)

// LMSClaims are the token claims issued by the learning platform for
// authenticated exam sessions.
type LMSClaims struct {
	jwt.StandardClaims
	Username string `json:"username"`
}

// PrincipalAuthMiddleware extracts the requesting principal from the bearer
// token and stores it in the gin context. Enrollment and permissions are
// checked downstream; this middleware only establishes identity.
func PrincipalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			logger.Warn("No Authorization token provided")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := parseLMSToken(tokenString)
		if err != nil {
			logger.Error("Error parsing token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("requestingUserID", claims.Subject)
		c.Set("requestingUser", claims.Username)

		c.Next()
	}
}

func parseLMSToken(tokenString string) (*LMSClaims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &LMSClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.GetString("auth.jwtSecret")), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*LMSClaims); ok && token.Valid {
		if claims.Subject == "" {
			return nil, fmt.Errorf("token has no subject")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token or wrong claims type")
}
