package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RoleProtection - Checks if the user's role is in the allowed set
//
// For development, authMode can be turned off to skip the check entirely.
func RoleProtection(roles []UserRole, authMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authMode {
			c.Next()
			return
		}

		userObj, ok := c.Get("User")
		if !ok {
			log.Error().Msg(ErrInvalidToken.Message)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrInvalidToken)
			return
		}

		user, ok := userObj.(UserToken)
		if !ok {
			log.Error().Msg(ErrInvalidToken.Message)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrInvalidToken)
			return
		}

		userRole := NormalizeRole(user.Role)
		if !contains(roles, userRole) {
			log.Error().Str("user", user.Email).Msg(fmt.Sprintf("%s. roles=%v", ErrNoPrivileges.Message, roles))
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrNoPrivileges)
			return
		}

		c.Next()
	}
}

func contains[T comparable](set []T, target T) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == target {
			return true
		}
	}
	return false
}
