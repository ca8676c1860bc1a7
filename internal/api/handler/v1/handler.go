package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wushufed/tournament-backend/internal/api/handler/v1/response"
	"github.com/wushufed/tournament-backend/internal/api/middleware"
)

// HandleHealthcheck godoc
// @Summary      Check API health status
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"health": "ok"})
}

func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, *response.Err) {
	raw := ctx.Param(name)

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, response.ErrBadRequest(fmt.Errorf("invalid %v (%v)", name, raw))
	}

	return id, nil
}

var errNotResourceOwner = errors.New("caller does not own this resource")

// requireCaller rejects requests whose token does not belong to the resource
// owner with the expected role.
func requireCaller(ctx *gin.Context, role string, id uuid.UUID) *response.Err {
	callerID, callerRole, ok := callerFromContext(ctx)
	if !ok || callerRole != role || callerID != id {
		return response.ErrForbidden(errNotResourceOwner)
	}

	return nil
}

// callerFromContext reads the identity the JWT middleware stored on the
// request.
func callerFromContext(ctx *gin.Context) (uuid.UUID, string, bool) {
	rawID, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return uuid.Nil, "", false
	}

	id, ok := rawID.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}

	role := ctx.GetString(middleware.ContextKeyUserRole)

	return id, role, true
}
