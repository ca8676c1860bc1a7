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
	"github.com/wushufed/tournament-backend/internal/service"
)

type TournamentService interface {
	CreateTournament(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error)
	ListAll(ctx context.Context) ([]domain.Tournament, error)
	ListOngoingForAthlete(ctx context.Context, athleteID uuid.UUID) ([]domain.TournamentStatus, error)
	RecordResults(ctx context.Context, id uuid.UUID, results domain.TournamentResults) (domain.Tournament, error)
}

type TournamentHandler struct {
	svc TournamentService
}

func NewTournamentHandler(svc TournamentService) *TournamentHandler {
	return &TournamentHandler{
		svc: svc,
	}
}

// HandleListTournaments godoc
// @Summary      Fetch all tournaments for the spectator view
// @Tags         tournaments
// @Produce      json
// @Success      200  {array}   domain.Tournament
// @Failure      500  {object}  response.Err
// @Router       /tournaments [get]
func (h *TournamentHandler) HandleListTournaments(ctx *gin.Context) {
	tournaments, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTournaments -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tournaments)
}

// HandleListOngoingTournaments godoc
// @Summary      Fetch ongoing tournaments with the athlete's eligibility attached
// @Tags         tournaments
// @Produce      json
// @Param        athlete_id  query     string  true  "athlete ID"
// @Success      200         {array}   domain.TournamentStatus
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /tournaments/ongoing [get]
func (h *TournamentHandler) HandleListOngoingTournaments(ctx *gin.Context) {
	raw := ctx.Query("athlete_id")

	athleteID, err := uuid.Parse(raw)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid athlete_id (%v)", raw)))
		return
	}

	statuses, err := h.svc.ListOngoingForAthlete(ctx.Request.Context(), athleteID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListOngoingTournaments -> h.svc.ListOngoingForAthlete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, statuses)
}

// HandleCreateTournament godoc
// @Summary      Create a new tournament
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateTournamentRequest  true  "request body"
// @Success      201      {object}  domain.Tournament
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tournaments [post]
// @Security BearerAuth
func (h *TournamentHandler) HandleCreateTournament(ctx *gin.Context) {
	var req request.CreateTournamentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tournament, err := h.svc.CreateTournament(ctx.Request.Context(), domain.Tournament{
		Name:      req.Name,
		Division:  req.Division,
		Stage:     req.Stage,
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTournament -> h.svc.CreateTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, tournament)
}

// HandleRecordResults godoc
// @Summary      Record a tournament's final results
// @Description  Attaches winner data and archives the tournament. Finalization
// @Description  is one-way; a finalized tournament rejects further results.
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        tournamentID  path      string                            true  "tournament ID"
// @Param        request       body      request.TournamentResultsRequest  true  "request body"
// @Success      200           {object}  domain.Tournament
// @Failure      400           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      409           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /tournaments/{tournamentID}/results [post]
// @Security BearerAuth
func (h *TournamentHandler) HandleRecordResults(ctx *gin.Context) {
	tournamentID, respErr := parseUUIDParam(ctx, "tournamentID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.TournamentResultsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tournament, err := h.svc.RecordResults(ctx.Request.Context(), tournamentID, domain.TournamentResults{
		Winner:      req.Winner,
		RunnerUp:    req.RunnerUp,
		WinnerScore: req.WinnerScore,
		RunnerScore: req.RunnerScore,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTournamentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
		case errors.Is(err, service.ErrTournamentFinalized):
			response.RenderErr(ctx, response.ErrConflict(service.ErrTournamentFinalized))
		default:
			err = fmt.Errorf("v1.HandleRecordResults -> h.svc.RecordResults -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, tournament)
}
