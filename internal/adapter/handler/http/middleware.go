package http

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/usdtgate/usdtgate/internal/core/domain"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"

// notifyAuth guards the notification route with the pay server's shared
// secret. An empty configured secret disables the check: the collaborator may
// authenticate upstream instead.
func notifyAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if secret == "" {
			ctx.Next()
			return
		}

		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			handleAbort(ctx, domain.ErrNotifyUnauthorized)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 || words[0] != authType {
			handleAbort(ctx, domain.ErrNotifyUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(words[1]), []byte(secret)) != 1 {
			handleAbort(ctx, domain.ErrNotifyUnauthorized)
			return
		}

		ctx.Next()
	}
}
