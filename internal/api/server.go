package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/wushufed/tournament-backend/docs"
	v1 "github.com/wushufed/tournament-backend/internal/api/handler/v1"
	"github.com/wushufed/tournament-backend/internal/api/middleware"
	"github.com/wushufed/tournament-backend/internal/config"
	"github.com/wushufed/tournament-backend/internal/repository"
	"github.com/wushufed/tournament-backend/internal/repository/dao"
	"github.com/wushufed/tournament-backend/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, photos service.PhotoStorage) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	athleteHandler := s.initAthleteHandler(db, photos)
	institutionHandler := s.initInstitutionHandler(db)
	endorsementHandler := s.initEndorsementHandler(db)
	tournamentHandler := s.initTournamentHandler(db)
	s.MountHandlers(athleteHandler, institutionHandler, endorsementHandler, tournamentHandler)

	return s
}

func (s *Server) initAthleteHandler(db *gorm.DB, photos service.PhotoStorage) *v1.AthleteHandler {
	athleteRepo := repository.NewAthleteRepository(dao.NewAthleteDAO(db))
	institutionRepo := repository.NewInstitutionRepository(dao.NewInstitutionDAO(db))
	endorsementRepo := repository.NewEndorsementRepository(dao.NewEndorsementDAO(db))

	authSvc := service.NewAuthService(athleteRepo, institutionRepo)
	svc := service.NewAthleteService(athleteRepo, endorsementRepo, photos)

	return v1.NewAthleteHandler(s.Config.API, authSvc, svc)
}

func (s *Server) initInstitutionHandler(db *gorm.DB) *v1.InstitutionHandler {
	athleteRepo := repository.NewAthleteRepository(dao.NewAthleteDAO(db))
	institutionRepo := repository.NewInstitutionRepository(dao.NewInstitutionDAO(db))

	authSvc := service.NewAuthService(athleteRepo, institutionRepo)
	svc := service.NewInstitutionService(institutionRepo)

	return v1.NewInstitutionHandler(s.Config.API, authSvc, svc)
}

func (s *Server) initEndorsementHandler(db *gorm.DB) *v1.EndorsementHandler {
	endorsementRepo := repository.NewEndorsementRepository(dao.NewEndorsementDAO(db))
	athleteRepo := repository.NewAthleteRepository(dao.NewAthleteDAO(db))
	institutionRepo := repository.NewInstitutionRepository(dao.NewInstitutionDAO(db))
	tournamentRepo := repository.NewTournamentRepository(dao.NewTournamentDAO(db))

	svc := service.NewEndorsementService(endorsementRepo, athleteRepo, institutionRepo, tournamentRepo)

	return v1.NewEndorsementHandler(svc)
}

func (s *Server) initTournamentHandler(db *gorm.DB) *v1.TournamentHandler {
	tournamentRepo := repository.NewTournamentRepository(dao.NewTournamentDAO(db))
	endorsementRepo := repository.NewEndorsementRepository(dao.NewEndorsementDAO(db))

	svc := service.NewTournamentService(tournamentRepo, endorsementRepo)

	return v1.NewTournamentHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	athleteHandler *v1.AthleteHandler,
	institutionHandler *v1.InstitutionHandler,
	endorsementHandler *v1.EndorsementHandler,
	tournamentHandler *v1.TournamentHandler,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	public := s.Router.Group(basePath)
	{
		public.POST("/athletes/signup", athleteHandler.HandleSignup)
		public.POST("/athletes/login", athleteHandler.HandleLogin)
		public.GET("/athletes/:athleteID", athleteHandler.HandleGetAthlete)

		public.POST("/institutions/signup", institutionHandler.HandleSignup)
		public.POST("/institutions/login", institutionHandler.HandleLogin)
		public.GET("/institutions", institutionHandler.HandleSearchInstitutions)
		public.GET("/institutions/:institutionID", institutionHandler.HandleGetInstitution)

		public.GET("/tournaments", tournamentHandler.HandleListTournaments)
		public.GET("/tournaments/ongoing", tournamentHandler.HandleListOngoingTournaments)
	}

	protected := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		protected.PATCH("/athletes/:athleteID", athleteHandler.HandleUpdateAthlete)
		protected.POST("/athletes/:athleteID/photo", athleteHandler.HandleUploadPhoto)

		protected.PATCH("/institutions/:institutionID", institutionHandler.HandleUpdateInstitution)
		protected.GET("/institutions/:institutionID/endorsements/pending", endorsementHandler.HandleListPending)
		protected.GET("/institutions/:institutionID/roster", endorsementHandler.HandleApprovedRoster)

		protected.POST("/endorsements", endorsementHandler.HandleRequestEndorsement)
		protected.POST("/endorsements/:endorsementID/review", endorsementHandler.HandleReviewEndorsement)

		protected.POST("/tournaments", tournamentHandler.HandleCreateTournament)
		protected.POST("/tournaments/:tournamentID/results", tournamentHandler.HandleRecordResults)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Wushu Federation Tournament API"
	docs.SwaggerInfo.Description = "Tournament-endorsement management backend for a martial-arts federation."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
