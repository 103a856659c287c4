package middlewares

import (
	"net/http"

	"snackmart-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminCookie adalah nama cookie sesi admin.
const AdminCookie = "adminToken"

// Halaman tujuan redirect gerbang admin.
const (
	LoginPath     = "/admin/login"
	DashboardPath = "/admin"
)

// AdminGate menjaga prefix /admin. Request tanpa cookie sesi yang valid
// dialihkan ke halaman login; request yang sudah login tapi menuju
// halaman login dialihkan ke dashboard. Selain itu diteruskan apa adanya.
func AdminGate(pasetoKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticated := false
		if token, err := c.Cookie(AdminCookie); err == nil && token != "" {
			if _, err := utils.VerifyToken(pasetoKey, token); err == nil {
				authenticated = true
			}
		}

		onLoginPage := c.Request.URL.Path == LoginPath

		switch {
		case !authenticated && !onLoginPage:
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		case authenticated && onLoginPage:
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
