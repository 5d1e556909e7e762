package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/invtrack/inventory-ledger-api/internal/pkg/jwthelper"
)

// ContextKeyUserID is where VerifyJWT stores the authenticated user's id.
const ContextKeyUserID = "user_id"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		segments := strings.Split(header, " ")
		if len(segments) != 2 || segments[0] != "Bearer" {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, segments[1])
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		// Token was minted for a different client, treat it as stolen.
		if claims.UserAgent != ctx.Request.UserAgent() {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Next()
	}
}
