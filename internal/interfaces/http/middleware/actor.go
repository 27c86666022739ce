package middleware

import (
	"github.com/geotrail/backend/internal/application/authz"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActorFromContext builds the acting user from the validated JWT claims.
// The second return value is false when the request is unauthenticated or
// the claims are malformed.
func ActorFromContext(c *gin.Context) (authz.Actor, bool) {
	claims := GetJWTClaims(c)
	if claims == nil {
		return authz.Actor{}, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return authz.Actor{}, false
	}
	structureID, err := uuid.Parse(claims.StructureID)
	if err != nil {
		return authz.Actor{}, false
	}

	return authz.Actor{
		UserID:      userID,
		StructureID: structureID,
		Permissions: claims.Permissions,
		IsAdmin:     claims.IsAdmin,
	}, true
}
