package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds baseline security headers. Stored CVs are
// previewed inline inside the frontend, so framing is allowed for the given
// origins instead of being denied outright.
func SecurityHeadersMiddleware(frameAncestors ...string) gin.HandlerFunc {
	ancestors := "'self'"
	for _, o := range frameAncestors {
		if o = strings.TrimSpace(o); o != "" {
			ancestors += " " + o
		}
	}

	csp := "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:; " +
		"frame-ancestors " + ancestors + "; " +
		"base-uri 'self'; " +
		"form-action 'self'"

	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

		// swagger UI needs its own scripts
		if !strings.Contains(c.Request.URL.Path, "/swagger/") {
			c.Header("Content-Security-Policy", csp)
		}

		c.Next()
	}
}
