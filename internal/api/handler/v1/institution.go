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
	"github.com/wushufed/tournament-backend/internal/config"
	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/pkg/jwthelper"
	"github.com/wushufed/tournament-backend/internal/service"
)

type InstitutionAuthService interface {
	RegisterInstitution(ctx context.Context, institution domain.Institution) (domain.Institution, error)
	LoginInstitution(ctx context.Context, contact, password string) (domain.Institution, error)
}

type InstitutionService interface {
	GetInstitution(ctx context.Context, id uuid.UUID) (domain.Institution, error)
	SearchInstitutions(ctx context.Context, name string) ([]domain.Institution, error)
	UpdateInstitution(ctx context.Context, id uuid.UUID, name, contact string) (domain.Institution, error)
}

type InstitutionHandler struct {
	conf    *config.APIConfig
	authSvc InstitutionAuthService
	svc     InstitutionService
}

func NewInstitutionHandler(conf *config.APIConfig, authSvc InstitutionAuthService, svc InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{
		conf:    conf,
		authSvc: authSvc,
		svc:     svc,
	}
}

// HandleSignup godoc
// @Summary      Register a new institution
// @Tags         institutions
// @Accept       json
// @Produce      json
// @Param        request  body      request.SignupRequest  true  "request body"
// @Success      201      {object}  domain.Institution
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /institutions/signup [post]
func (h *InstitutionHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	institution, err := h.authSvc.RegisterInstitution(ctx.Request.Context(), domain.Institution{
		Name:     req.Name,
		Contact:  req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInstitutionExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInstitutionExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.authSvc.RegisterInstitution -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, institution)
}

// HandleLogin godoc
// @Summary      Login an institution
// @Tags         institutions
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.InstitutionLoginResponse
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /institutions/login [post]
func (h *InstitutionHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	institution, err := h.authSvc.LoginInstitution(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInstitutionNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(service.ErrWrongPassword))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.authSvc.LoginInstitution -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), institution.ID, jwthelper.RoleInstitution, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.InstitutionLoginResponse{
		Token:       token,
		Institution: institution,
	})
}

// HandleGetInstitution godoc
// @Summary      Fetch institution details
// @Tags         institutions
// @Produce      json
// @Param        institutionID  path      string  true  "institution ID"
// @Success      200            {object}  domain.Institution
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /institutions/{institutionID} [get]
func (h *InstitutionHandler) HandleGetInstitution(ctx *gin.Context) {
	institutionID, respErr := parseUUIDParam(ctx, "institutionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	institution, err := h.svc.GetInstitution(ctx.Request.Context(), institutionID)
	if err != nil {
		if errors.Is(err, service.ErrInstitutionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("institution", "ID", institutionID))
			return
		}

		err = fmt.Errorf("v1.HandleGetInstitution -> h.svc.GetInstitution -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, institution)
}

// HandleSearchInstitutions godoc
// @Summary      Search institutions by name
// @Tags         institutions
// @Produce      json
// @Param        name  query     string  true  "name substring"
// @Success      200   {array}   domain.Institution
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /institutions [get]
func (h *InstitutionHandler) HandleSearchInstitutions(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("query parameter name is required")))
		return
	}

	institutions, err := h.svc.SearchInstitutions(ctx.Request.Context(), name)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchInstitutions -> h.svc.SearchInstitutions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if len(institutions) == 0 {
		response.RenderErr(ctx, response.ErrNotFound("institution", "name", name))
		return
	}

	ctx.JSON(http.StatusOK, institutions)
}

// HandleUpdateInstitution godoc
// @Summary      Update an institution's name and contact
// @Tags         institutions
// @Accept       json
// @Produce      json
// @Param        institutionID  path      string                            true  "institution ID"
// @Param        request        body      request.UpdateInstitutionRequest  true  "request body"
// @Success      200            {object}  domain.Institution
// @Failure      400            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /institutions/{institutionID} [patch]
// @Security BearerAuth
func (h *InstitutionHandler) HandleUpdateInstitution(ctx *gin.Context) {
	institutionID, respErr := parseUUIDParam(ctx, "institutionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireCaller(ctx, jwthelper.RoleInstitution, institutionID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateInstitutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	institution, err := h.svc.UpdateInstitution(ctx.Request.Context(), institutionID, req.Name, req.Contact)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInstitutionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("institution", "ID", institutionID))
		case errors.Is(err, service.ErrInstitutionExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrInstitutionExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateInstitution -> h.svc.UpdateInstitution -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, institution)
}
