package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wushufed/tournament-backend/internal/api/handler/v1/request"
	"github.com/wushufed/tournament-backend/internal/api/handler/v1/response"
	"github.com/wushufed/tournament-backend/internal/config"
	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/pkg/jwthelper"
	"github.com/wushufed/tournament-backend/internal/service"
)

type AthleteAuthService interface {
	RegisterAthlete(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error)
	LoginAthlete(ctx context.Context, contact, password string) (domain.Athlete, error)
}

type AthleteService interface {
	GetAthlete(ctx context.Context, id uuid.UUID) (domain.Athlete, error)
	UpdateAthlete(ctx context.Context, id uuid.UUID, patch domain.AthletePatch) (domain.Athlete, error)
	AttachPhoto(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (domain.Athlete, error)
}

type AthleteHandler struct {
	conf    *config.APIConfig
	authSvc AthleteAuthService
	svc     AthleteService
}

func NewAthleteHandler(conf *config.APIConfig, authSvc AthleteAuthService, svc AthleteService) *AthleteHandler {
	return &AthleteHandler{
		conf:    conf,
		authSvc: authSvc,
		svc:     svc,
	}
}

// HandleSignup godoc
// @Summary      Register a new athlete
// @Tags         athletes
// @Accept       json
// @Produce      json
// @Param        request  body      request.AthleteSignupRequest  true  "request body"
// @Success      201      {object}  domain.Athlete
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /athletes/signup [post]
func (h *AthleteHandler) HandleSignup(ctx *gin.Context) {
	var req request.AthleteSignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	athlete, err := h.authSvc.RegisterAthlete(ctx.Request.Context(), domain.Athlete{
		Name:     req.Name,
		Age:      req.Age,
		Gender:   req.Gender,
		Division: req.Division,
		Contact:  req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrAthleteExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAthleteExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.authSvc.RegisterAthlete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, athlete)
}

// HandleLogin godoc
// @Summary      Login an athlete
// @Tags         athletes
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.AthleteLoginResponse
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /athletes/login [post]
func (h *AthleteHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	athlete, err := h.authSvc.LoginAthlete(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAthleteNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(service.ErrWrongPassword))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.authSvc.LoginAthlete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), athlete.ID, jwthelper.RoleAthlete, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.AthleteLoginResponse{
		Token:   token,
		Athlete: athlete,
	})
}

// HandleGetAthlete godoc
// @Summary      Fetch athlete details with derived matches played
// @Tags         athletes
// @Produce      json
// @Param        athleteID  path      string  true  "athlete ID"
// @Success      200        {object}  domain.Athlete
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /athletes/{athleteID} [get]
func (h *AthleteHandler) HandleGetAthlete(ctx *gin.Context) {
	athleteID, respErr := parseUUIDParam(ctx, "athleteID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	athlete, err := h.svc.GetAthlete(ctx.Request.Context(), athleteID)
	if err != nil {
		if errors.Is(err, service.ErrAthleteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("athlete", "ID", athleteID))
			return
		}

		err = fmt.Errorf("v1.HandleGetAthlete -> h.svc.GetAthlete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, athlete)
}

// HandleUpdateAthlete godoc
// @Summary      Update an athlete's details
// @Description  Applies only the fields present in the request body.
// @Tags         athletes
// @Accept       json
// @Produce      json
// @Param        athleteID  path      string                        true  "athlete ID"
// @Param        request    body      request.UpdateAthleteRequest  true  "request body"
// @Success      200        {object}  domain.Athlete
// @Failure      400        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /athletes/{athleteID} [patch]
// @Security BearerAuth
func (h *AthleteHandler) HandleUpdateAthlete(ctx *gin.Context) {
	athleteID, respErr := parseUUIDParam(ctx, "athleteID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireCaller(ctx, jwthelper.RoleAthlete, athleteID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateAthleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	athlete, err := h.svc.UpdateAthlete(ctx.Request.Context(), athleteID, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAthleteNotFound):
			response.RenderErr(ctx, response.ErrNotFound("athlete", "ID", athleteID))
		case errors.Is(err, service.ErrAthleteExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAthleteExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateAthlete -> h.svc.UpdateAthlete -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, athlete)
}

// HandleUploadPhoto godoc
// @Summary      Upload an athlete's profile photo
// @Tags         athletes
// @Accept       multipart/form-data
// @Produce      json
// @Param        athleteID  path      string  true  "athlete ID"
// @Param        photo      formData  file    true  "photo file"
// @Success      200        {object}  domain.Athlete
// @Failure      400        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /athletes/{athleteID}/photo [post]
// @Security BearerAuth
func (h *AthleteHandler) HandleUploadPhoto(ctx *gin.Context) {
	athleteID, respErr := parseUUIDParam(ctx, "athleteID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireCaller(ctx, jwthelper.RoleAthlete, athleteID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	defer file.Close()

	athlete, err := h.svc.AttachPhoto(
		ctx.Request.Context(),
		athleteID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		if errors.Is(err, service.ErrAthleteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("athlete", "ID", athleteID))
			return
		}

		err = fmt.Errorf("v1.HandleUploadPhoto -> h.svc.AttachPhoto -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, athlete)
}
