package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-agency/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdempotentRouter(rdb *redis.Client, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payouts/finalize", func(c *gin.Context) {
		c.Set(ContextUserID, "u-1")
		c.Set(ContextAgencyID, "a-1")
		c.Next()
	}, Idempotency(rdb), func(c *gin.Context) {
		*calls++
		response.Success(c, http.StatusOK, gin.H{"n": 1}, nil)
	})
	return r
}

func postFinalize(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payouts/finalize", nil)
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	cacheKey := IdempotencyCacheKey("/payouts/finalize", "a-1", "u-1", "k-1")
	lockKey := cacheKey + ":lock"
	body := `{"ok":true,"data":{"n":1}}`

	stored, err := json.Marshal(cachedResponse{
		Status:      http.StatusOK,
		ContentType: "application/json; charset=utf-8",
		Body:        []byte(body),
	})
	require.NoError(t, err)

	t.Run("first request stores response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, stored, idempotencyTTL).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		calls := 0
		w := postFinalize(newIdempotentRouter(rdb, &calls), "k-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, body, w.Body.String())
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips handler", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal(string(stored))

		calls := 0
		w := postFinalize(newIdempotentRouter(rdb, &calls), "k-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, body, w.Body.String())
		assert.Equal(t, "true", w.Header().Get(idempotencyReplayed))
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		calls := 0
		w := postFinalize(newIdempotentRouter(rdb, &calls), "k-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.Equal(t, 0, calls)
	})

	t.Run("no key passes through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		calls := 0
		w := postFinalize(newIdempotentRouter(rdb, &calls), "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
