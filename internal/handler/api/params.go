package api

import (
	"net/http"

	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingPrincipal = errs.New("authenticated user missing from context")

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// currentUser must run behind RequireAuth.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
		return uuid.Nil, false
	}
	return userID, true
}
