package middleware

import (
	"net/http"
	"strings"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	apperrors "github.com/christianjamesnaguit/wcs-backend/backend/common/errors"
	"github.com/christianjamesnaguit/wcs-backend/backend/service"

	"github.com/gin-gonic/gin"
)

// JWTAuth is the auth guard for every protected route. It validates the
// bearer credential and puts the authenticated user id into the request
// context; every downstream query must scope by that id. The token payload
// is trusted as-is, without an account lookup, so an outstanding
// token keeps working until expiry even if the account was deleted.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.RespError(c, http.StatusUnauthorized, apperrors.MsgMissingAuthHeader)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.RespError(c, http.StatusUnauthorized, apperrors.MsgInvalidAuthFormat)
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := service.ValidateToken(tokenString)
		if err != nil {
			common.RespError(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		// Tokens revoked by logout sit in the Redis blacklist until expiry.
		if common.RedisEnabled {
			blacklisted, _ := common.RDB.Exists(c, "jwt:blacklist:"+tokenString).Result()
			if blacklisted > 0 {
				common.RespError(c, http.StatusUnauthorized, apperrors.MsgTokenInvalidated)
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
