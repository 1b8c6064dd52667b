package middlewares

import (
	"net"
	"strings"

	"facegate.io/application/constants"
	"github.com/gin-gonic/gin"
)

// ResolveClientKey extracts a best-effort client address from the
// request metadata. Returns the literal "unknown" when nothing is
// resolvable, which the abuse guard treats as "cannot evaluate" rather
// than suspicious.
func ResolveClientKey(ctx *gin.Context) string {
	forwarded := ctx.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}
	realIP := ctx.GetHeader("X-Real-Ip")
	if realIP != "" && net.ParseIP(realIP) != nil {
		return realIP
	}
	clientIP := ctx.ClientIP()
	if clientIP != "" {
		return clientIP
	}
	return constants.UNKNOWN_CLIENT_KEY
}
