package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/services"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsServiceInterface
	logger           *zap.Logger
}

func NewAnalyticsController(analyticsService services.AnalyticsServiceInterface, logger *zap.Logger) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService, logger: logger}
}

func (c *AnalyticsController) GetDashboard(ctx echo.Context) error {
	dashboard, err := c.analyticsService.GetDashboard(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dashboard, "dashboard", http.StatusOK)
}

func (c *AnalyticsController) GetEquipmentHealthTrends(ctx echo.Context) error {
	trends, err := c.analyticsService.GetEquipmentHealthTrends(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, trends, "equipment health trends", http.StatusOK)
}

func (c *AnalyticsController) GetTechnicianPerformance(ctx echo.Context) error {
	performance, err := c.analyticsService.GetTechnicianPerformance(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, performance, "technician performance", http.StatusOK)
}

func (c *AnalyticsController) GetBreakdownWarnings(ctx echo.Context) error {
	warnings, err := c.analyticsService.GetBreakdownWarnings(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, warnings, "breakdown warnings", http.StatusOK)
}
