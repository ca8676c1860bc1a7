package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wushufed/tournament-backend/internal/api/handler/v1/request"
	"github.com/wushufed/tournament-backend/internal/api/handler/v1/response"
	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/pkg/jwthelper"
	"github.com/wushufed/tournament-backend/internal/service"
)

type EndorsementService interface {
	Request(ctx context.Context, athleteID, institutionID, tournamentID uuid.UUID) (domain.Endorsement, error)
	Review(ctx context.Context, id uuid.UUID, approve bool) (domain.Endorsement, error)
	ListPending(ctx context.Context, institutionID uuid.UUID) ([]domain.PendingEndorsement, error)
	ApprovedRoster(ctx context.Context, institutionID uuid.UUID) ([]domain.Athlete, error)
}

type EndorsementHandler struct {
	svc EndorsementService
}

func NewEndorsementHandler(svc EndorsementService) *EndorsementHandler {
	return &EndorsementHandler{
		svc: svc,
	}
}

// HandleRequestEndorsement godoc
// @Summary      Request an endorsement from an institution for a tournament
// @Tags         endorsements
// @Accept       json
// @Produce      json
// @Param        request  body      request.RequestEndorsementRequest  true  "request body"
// @Success      201      {object}  domain.Endorsement
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /endorsements [post]
// @Security BearerAuth
func (h *EndorsementHandler) HandleRequestEndorsement(ctx *gin.Context) {
	var req request.RequestEndorsementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	athleteID := uuid.MustParse(req.AthleteID)
	institutionID := uuid.MustParse(req.InstitutionID)
	tournamentID := uuid.MustParse(req.TournamentID)

	if respErr := requireCaller(ctx, jwthelper.RoleAthlete, athleteID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	endorsement, err := h.svc.Request(ctx.Request.Context(), athleteID, institutionID, tournamentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAthleteNotFound):
			response.RenderErr(ctx, response.ErrNotFound("athlete", "ID", athleteID))
		case errors.Is(err, service.ErrInstitutionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("institution", "ID", institutionID))
		case errors.Is(err, service.ErrTournamentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
		default:
			err = fmt.Errorf("v1.HandleRequestEndorsement -> h.svc.Request -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, endorsement)
}

// HandleListPending godoc
// @Summary      Fetch pending endorsements with athlete and tournament details
// @Tags         endorsements
// @Produce      json
// @Param        institutionID  path      string  true  "institution ID"
// @Success      200            {array}   domain.PendingEndorsement
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /institutions/{institutionID}/endorsements/pending [get]
// @Security BearerAuth
func (h *EndorsementHandler) HandleListPending(ctx *gin.Context) {
	institutionID, respErr := parseUUIDParam(ctx, "institutionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireCaller(ctx, jwthelper.RoleInstitution, institutionID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	pending, err := h.svc.ListPending(ctx.Request.Context(), institutionID)
	if err != nil {
		if errors.Is(err, service.ErrInstitutionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("institution", "ID", institutionID))
			return
		}

		err = fmt.Errorf("v1.HandleListPending -> h.svc.ListPending -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, pending)
}

// HandleReviewEndorsement godoc
// @Summary      Review a pending endorsement
// @Description  Settles a pending request as approved or rejected. A settled
// @Description  endorsement cannot be reviewed again.
// @Tags         endorsements
// @Accept       json
// @Produce      json
// @Param        endorsementID  path      string                            true  "endorsement ID"
// @Param        request        body      request.ReviewEndorsementRequest  true  "request body"
// @Success      200            {object}  domain.Endorsement
// @Failure      400            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      409            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /endorsements/{endorsementID}/review [post]
// @Security BearerAuth
func (h *EndorsementHandler) HandleReviewEndorsement(ctx *gin.Context) {
	endorsementID, respErr := parseUUIDParam(ctx, "endorsementID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	_, callerRole, ok := callerFromContext(ctx)
	if !ok || callerRole != jwthelper.RoleInstitution {
		response.RenderErr(ctx, response.ErrForbidden(errNotResourceOwner))
		return
	}

	var req request.ReviewEndorsementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	endorsement, err := h.svc.Review(ctx.Request.Context(), endorsementID, *req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEndorsementNotFound):
			response.RenderErr(ctx, response.ErrNotFound("endorsement", "ID", endorsementID))
		case errors.Is(err, service.ErrEndorsementReviewed):
			response.RenderErr(ctx, response.ErrConflict(service.ErrEndorsementReviewed))
		default:
			err = fmt.Errorf("v1.HandleReviewEndorsement -> h.svc.Review -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, endorsement)
}

// HandleApprovedRoster godoc
// @Summary      Fetch the athletes approved by an institution for ongoing tournaments
// @Tags         endorsements
// @Produce      json
// @Param        institutionID  path      string  true  "institution ID"
// @Success      200            {array}   domain.Athlete
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /institutions/{institutionID}/roster [get]
// @Security BearerAuth
func (h *EndorsementHandler) HandleApprovedRoster(ctx *gin.Context) {
	institutionID, respErr := parseUUIDParam(ctx, "institutionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireCaller(ctx, jwthelper.RoleInstitution, institutionID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	athletes, err := h.svc.ApprovedRoster(ctx.Request.Context(), institutionID)
	if err != nil {
		if errors.Is(err, service.ErrInstitutionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("institution", "ID", institutionID))
			return
		}

		err = fmt.Errorf("v1.HandleApprovedRoster -> h.svc.ApprovedRoster -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, athletes)
}
