package middleware

import (
	"net/http"

	"go-agency/internal/shared/apperror"
	"go-agency/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotFound   = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken    = apperror.New(apperror.CodeInvalidToken, "Invalid or malformed token", http.StatusUnauthorized)
	ErrTokenExpired    = apperror.New(apperror.CodeTokenExpired, "Token has expired", http.StatusUnauthorized)
	ErrMissingClaim    = apperror.New(apperror.CodeInvalidToken, "Required claim not found in token", http.StatusUnauthorized)
	ErrMissingContext  = apperror.New(apperror.CodeUnauthorized, "User tidak terautentikasi", http.StatusUnauthorized)
	ErrRequestInFlight = apperror.New(apperror.CodeProcessing, "Permintaan Anda sedang diproses, mohon tunggu sebentar.", http.StatusConflict)
	ErrTooManyRequests = apperror.New(apperror.CodeTooManyRequests, "Too many requests", http.StatusTooManyRequests)
)

func abortWithError(c *gin.Context, err *apperror.AppError, details any) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, details)
	c.Abort()
}
