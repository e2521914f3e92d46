package middleware

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go-agency/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	ContextUserID   = "user_id"
	ContextAgencyID = "agency_id"
	ContextRole     = "role"
)

// AuthMiddleware memvalidasi JWT dari header Authorization atau cookie access_token.
// Token wajib membawa claim user_id dan agency_id.
func AuthMiddleware() gin.HandlerFunc {
	return authMiddleware(func() []byte { return []byte(os.Getenv("JWT_SECRET")) })
}

func authMiddleware(secret func() []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWithError(c, ErrTokenNotFound, nil)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return secret(), nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, ErrTokenExpired, nil)
				return
			}
			abortWithError(c, ErrInvalidToken, nil)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWithError(c, ErrInvalidToken, nil)
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			abortWithError(c, ErrMissingClaim, "user_id")
			return
		}

		agencyID, _ := claims["agency_id"].(string)
		if agencyID == "" {
			abortWithError(c, ErrMissingClaim, "agency_id")
			return
		}

		role, _ := claims["role"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextAgencyID, agencyID)
		c.Set(ContextRole, role)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		ctx = contextutil.WithAgencyID(ctx, agencyID)
		reqLogger := contextutil.GetLogger(ctx, nil).With(
			zap.String("user_id", userID),
			zap.String("agency_id", agencyID),
		)
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()
	}
}
