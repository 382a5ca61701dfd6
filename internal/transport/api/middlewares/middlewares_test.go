package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/service/tokens"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStatusForKind(t *testing.T) {
	cases := map[string]int{
		domain.KindInsufficientBalance: http.StatusPaymentRequired,
		domain.KindInvalidTransition:   http.StatusConflict,
		domain.KindDuplicateOffer:      http.StatusConflict,
		domain.KindNotAuthorized:       http.StatusForbidden,
		domain.KindNotFound:            http.StatusNotFound,
		domain.KindExternalService:     http.StatusBadGateway,
		domain.KindInvalidArgument:     http.StatusUnprocessableEntity,
		domain.KindInternal:            http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, StatusForKind(kind), kind)
	}
}

func TestErrors(t *testing.T) {
	r := gin.New()
	r.Use(Errors())
	r.GET("/public", func(c *gin.Context) {
		_ = c.Error(domain.Reject(domain.ErrInvalidTransition, "order is not open")).SetType(gin.ErrorTypePublic)
		c.Status(http.StatusConflict)
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("connection refused")).SetType(gin.ErrorTypePrivate)
	})
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("ignored"))
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/public", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"invalid_transition","reason":"order is not open"}`, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestAuthRequired(t *testing.T) {
	secret := []byte("secret")
	r := gin.New()
	r.GET("/me", AuthRequired(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetInt64(CurrentUserIDKey), "admin": c.GetBool(IsAdminKey)})
	})
	r.GET("/admin", AuthRequired(secret), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	userToken, err := tokens.GenerateUserJWT(7, time.Hour, secret)
	require.NoError(t, err)
	adminToken, err := tokens.GenerateAdminJWT(1, time.Hour, secret)
	require.NoError(t, err)
	foreignToken, err := tokens.GenerateUserJWT(7, time.Hour, []byte("other"))
	require.NoError(t, err)

	request := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return serve(r, req)
	}

	w := request("/me", userToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"admin":false}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, request("/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, request("/me", foreignToken).Code)

	assert.Equal(t, http.StatusForbidden, request("/admin", userToken).Code)
	assert.Equal(t, http.StatusOK, request("/admin", adminToken).Code)
}

func TestGatewayToken(t *testing.T) {
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	r := gin.New()
	r.POST("/start", GatewayToken("gw"), handler)
	r.POST("/closed", GatewayToken(""), handler)

	request := func(path, token string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(GatewayTokenHeader, token)
		return serve(r, req).Code
	}

	assert.Equal(t, http.StatusOK, request("/start", "gw"))
	assert.Equal(t, http.StatusUnauthorized, request("/start", "gx"))
	assert.Equal(t, http.StatusUnauthorized, request("/closed", ""))
}
