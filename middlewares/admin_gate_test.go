package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"snackmart-backend/middlewares"
	"snackmart-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gateKey = []byte("0123456789abcdef0123456789abcdef")

func gateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin", middlewares.AdminGate(gateKey))
	admin.GET("", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	admin.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })
	admin.GET("/products", func(c *gin.Context) { c.String(http.StatusOK, "products") })
	return r
}

func gateRequest(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middlewares.AdminCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGateRedirectsAnonymousToLogin(t *testing.T) {
	r := gateRouter()

	for _, path := range []string{"/admin", "/admin/products"} {
		w := gateRequest(t, r, path, "")
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, middlewares.LoginPath, w.Header().Get("Location"), path)
	}
}

func TestGateAllowsAnonymousLoginPage(t *testing.T) {
	r := gateRouter()

	w := gateRequest(t, r, "/admin/login", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login", w.Body.String())
}

func TestGateRedirectsAuthenticatedAwayFromLogin(t *testing.T) {
	r := gateRouter()
	token, err := utils.IssueToken(gateKey, "1")
	require.NoError(t, err)

	w := gateRequest(t, r, "/admin/login", token)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, middlewares.DashboardPath, w.Header().Get("Location"))
}

func TestGatePassesAuthenticatedThrough(t *testing.T) {
	r := gateRouter()
	token, err := utils.IssueToken(gateKey, "1")
	require.NoError(t, err)

	w := gateRequest(t, r, "/admin/products", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "products", w.Body.String())
}

func TestGateRejectsGarbageToken(t *testing.T) {
	r := gateRouter()

	// Cookie yang ada tapi tidak valid diperlakukan seperti tidak ada:
	// keberadaan cookie saja tidak cukup.
	w := gateRequest(t, r, "/admin", "bukan-token")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, middlewares.LoginPath, w.Header().Get("Location"))
}

func TestGateRejectsTokenSignedWithOtherKey(t *testing.T) {
	r := gateRouter()
	otherKey := []byte("ffffffffffffffffffffffffffffffff")
	token, err := utils.IssueToken(otherKey, "1")
	require.NoError(t, err)

	w := gateRequest(t, r, "/admin", token)
	assert.Equal(t, http.StatusFound, w.Code)
}
