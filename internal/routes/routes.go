package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/controllers"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/listeners"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/repositories"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/services"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/config"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/eventbus"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/middleware"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/service"
)

// InitRouter wires repositories, services and controllers and mounts every
// route group under /api. All non-auth routes require a valid access token.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	bus := eventbus.New(logger)
	listeners.NewNotificationListener(logger).Register(bus)

	txManager := repositories.NewTxManager(dbConn)

	userRepo := repositories.NewUserRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	technicianRepo := repositories.NewTechnicianRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	historyRepo := repositories.NewHealthHistoryRepository(dbConn)
	analyticsRepo := repositories.NewAnalyticsRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	priorityService := services.NewPriorityService()
	matcherService := services.NewMatcherService()
	riskService := services.NewRiskService()
	costService := services.NewCostService()
	sustainabilityService := services.NewSustainabilityService()

	authService := services.NewAuthService(userRepo, jwtSvc)
	teamService := services.NewTeamService(teamRepo)
	technicianService := services.NewTechnicianService(technicianRepo, teamRepo)
	equipmentService := services.NewEquipmentService(equipmentRepo, historyRepo, teamRepo)
	requestService := services.NewRequestService(txManager, requestRepo, equipmentRepo,
		technicianRepo, historyRepo, priorityService, bus, logger)
	insightsService := services.NewInsightsService(equipmentRepo, requestRepo, technicianRepo,
		priorityService, matcherService, riskService, costService, sustainabilityService)
	analyticsService := services.NewAnalyticsService(analyticsRepo, cacheRepo,
		cfg.Analytics.DashboardCacheTTL, logger)
	reportService := services.NewReportService(reportRepo, logger)

	registerAuthRoutes(api, controllers.NewAuthController(authService, logger))

	protected := api.Group("", authMW.Auth)
	registerTeamRoutes(protected, controllers.NewTeamController(teamService, logger))
	registerTechnicianRoutes(protected, controllers.NewTechnicianController(technicianService, logger))
	requestController := controllers.NewRequestController(requestService, logger)
	registerEquipmentRoutes(protected, controllers.NewEquipmentController(equipmentService, logger), requestController)
	registerRequestRoutes(protected, requestController)
	registerInsightsRoutes(protected, controllers.NewInsightsController(insightsService, logger))
	registerAnalyticsRoutes(protected, controllers.NewAnalyticsController(analyticsService, logger))
	registerReportRoutes(protected, controllers.NewReportController(reportService, logger))
}

func registerAuthRoutes(g *echo.Group, c *controllers.AuthController) {
	auth := g.Group("/auth")
	auth.POST("/login", c.Login)
	auth.POST("/refresh", c.Refresh)
}

func registerTeamRoutes(g *echo.Group, c *controllers.TeamController) {
	teams := g.Group("/teams")
	teams.GET("", c.GetTeams)
	teams.GET("/:id", c.FindTeam)
	teams.POST("", c.CreateTeam)
	teams.PUT("/:id", c.UpdateTeam)
}

func registerTechnicianRoutes(g *echo.Group, c *controllers.TechnicianController) {
	technicians := g.Group("/technicians")
	technicians.GET("", c.GetTechnicians)
	technicians.GET("/team/:teamId", c.GetTechniciansByTeam)
	technicians.GET("/:id", c.FindTechnician)
	technicians.POST("", c.CreateTechnician)
	technicians.PUT("/:id", c.UpdateTechnician)
	technicians.DELETE("/:id", c.DeleteTechnician)
}

func registerEquipmentRoutes(g *echo.Group, c *controllers.EquipmentController, rc *controllers.RequestController) {
	equipment := g.Group("/equipment")
	equipment.GET("", c.GetEquipment)
	equipment.GET("/:id", c.FindEquipment)
	equipment.GET("/:id/health-history", c.GetHealthHistory)
	equipment.GET("/:id/requests", rc.ListByEquipment)
	equipment.POST("", c.CreateEquipment)
	equipment.PUT("/:id", c.UpdateEquipment)
}

func registerRequestRoutes(g *echo.Group, c *controllers.RequestController) {
	requests := g.Group("/requests")
	requests.GET("", c.GetRequests)
	requests.GET("/:id", c.FindRequest)
	requests.POST("", c.CreateRequest)
	requests.PUT("/:id", c.UpdateRequest)
	requests.DELETE("/:id", c.DeleteRequest)
}

func registerInsightsRoutes(g *echo.Group, c *controllers.InsightsController) {
	insights := g.Group("/insights")
	insights.GET("/risk/:equipmentId", c.GetRiskLevel)
	insights.GET("/prediction/:equipmentId", c.GetFailurePrediction)
	insights.GET("/suggest-technician/:equipmentId/:teamId", c.SuggestTechnician)
	insights.GET("/priority/:equipmentId", c.ComputePriority)
	insights.GET("/cost/:equipmentId", c.GetCostAnalysis)
	insights.GET("/sustainability/:equipmentId", c.GetSustainability)
}

func registerAnalyticsRoutes(g *echo.Group, c *controllers.AnalyticsController) {
	analytics := g.Group("/analytics")
	analytics.GET("/dashboard", c.GetDashboard)
	analytics.GET("/equipment-health", c.GetEquipmentHealthTrends)
	analytics.GET("/technician-performance", c.GetTechnicianPerformance)
	analytics.GET("/breakdown-warnings", c.GetBreakdownWarnings)
}

func registerReportRoutes(g *echo.Group, c *controllers.ReportController) {
	reports := g.Group("/reports")
	reports.GET("/maintenance", c.GetMaintenanceReport)
}
