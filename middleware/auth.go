package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// JWKSProvider hands out the key set for token validation. When it is not
// enabled, tokens are decoded without signature verification; the hospital
// backend stays the enforcing side either way.
type JWKSProvider interface {
	GetJWKS() (*keyfunc.JWKS, error)
	Enabled() bool
}

// CheckAuth - Token validator for api requests
func CheckAuth(provider JWKSProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		token := strings.Split(authHeader, "Bearer ")

		if len(token) < 2 || token[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, InvalidTokenResponse)
			return
		}

		userToken := UserToken{}

		if provider != nil && provider.Enabled() {
			jwks, err := provider.GetJWKS()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrOpenIDConfiguration)
				return
			}

			_, err = jwt.ParseWithClaims(token[1], &userToken, jwks.Keyfunc)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, InvalidTokenResponse)
				return
			}

			if !userToken.VerifyExpiresAt(time.Now(), true) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, TokenExpiredResponse)
				return
			}
		} else {
			// identity claims are best effort here, token presence alone
			// authenticates
			parser := jwt.NewParser()
			if _, _, err := parser.ParseUnverified(token[1], &userToken); err != nil {
				userToken = UserToken{}
			}
		}

		c.Set("User", userToken)
		c.Next()
	}
}
