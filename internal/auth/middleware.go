package auth

import (
	"context"
	"net/http"
	"strings"

	dom "github.com/LudyPitra/AI-Diary-App/internal/domain"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

const contextKeyUser = "current_user"

// AccountResolver resolves a token subject to an account. The lookup runs on
// every protected request; nothing is cached between requests.
type AccountResolver interface {
	GetByEmail(ctx context.Context, email string) (dom.User, error)
}

// CurrentUser returns the account set by RequireToken. Zero value if not set.
func CurrentUser(c *gin.Context) dom.User {
	v, ok := c.Get(contextKeyUser)
	if !ok {
		return dom.User{}
	}
	u, ok := v.(dom.User)
	if !ok {
		return dom.User{}
	}
	return u
}

// RequireToken returns a middleware that verifies the Authorization bearer
// token and resolves its subject to an account. Missing, malformed, expired
// or forged tokens, and tokens whose subject no longer resolves, all yield
// 401 with a re-authentication challenge.
func RequireToken(tokens *TokenManager, users AccountResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			challenge(c)
			return
		}
		email, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			challenge(c)
			return
		}
		u, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			challenge(c)
			return
		}
		c.Set(contextKeyUser, u)
		c.Next()
	}
}

func challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
}
