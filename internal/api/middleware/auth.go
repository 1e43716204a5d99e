package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/toybridge/toybridge-api/internal/pkg/jwthelper"
)

// ContextKeyAuthEmail is where VerifyJWT stores the signed-in email.
const ContextKeyAuthEmail = "authEmail"

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT rejects requests without a valid bearer token.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please sign in"})
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please sign in"})
			return
		}

		ctx.Set(ContextKeyAuthEmail, claims.Email)
		ctx.Next()
	}
}
