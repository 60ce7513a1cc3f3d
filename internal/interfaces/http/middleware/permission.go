package middleware

import (
	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireFeature creates middleware that lets a request through only when
// the authenticated user's role grants the given feature. It must run
// after JWTAuth.
func RequireFeature(feature identity.Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		role := identity.Role(claims.Role)
		if !role.HasPermission(feature) {
			requestID := c.GetString("request_id")
			c.AbortWithStatusJSON(
				dto.GetHTTPStatus(dto.ErrCodeForbidden),
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, "Your role does not allow this action", requestID),
			)
			return
		}

		c.Next()
	}
}
