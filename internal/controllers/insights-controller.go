package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/services"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/utils"
)

type InsightsController struct {
	insightsService services.InsightsServiceInterface
	logger          *zap.Logger
}

func NewInsightsController(insightsService services.InsightsServiceInterface, logger *zap.Logger) *InsightsController {
	return &InsightsController{insightsService: insightsService, logger: logger}
}

func (c *InsightsController) GetRiskLevel(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "equipmentId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	risk, err := c.insightsService.GetRiskLevel(ctx.Request().Context(), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, risk, "risk assessment", http.StatusOK)
}

func (c *InsightsController) GetFailurePrediction(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "equipmentId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	prediction, err := c.insightsService.GetFailurePrediction(ctx.Request().Context(), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, prediction, "failure prediction", http.StatusOK)
}

func (c *InsightsController) SuggestTechnician(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "equipmentId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	teamID, err := parseIDParam(ctx, "teamId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	suggestion, err := c.insightsService.SuggestTechnician(ctx.Request().Context(), equipmentID, teamID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, suggestion, "technician suggestion", http.StatusOK)
}

func (c *InsightsController) ComputePriority(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "equipmentId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	priority, err := c.insightsService.ComputePriority(ctx.Request().Context(), equipmentID, ctx.QueryParam("type"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, priority, "recommended priority", http.StatusOK)
}

func (c *InsightsController) GetCostAnalysis(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "equipmentId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	analysis, err := c.insightsService.GetCostAnalysis(ctx.Request().Context(), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, analysis, "cost analysis", http.StatusOK)
}

func (c *InsightsController) GetSustainability(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "equipmentId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	report, err := c.insightsService.GetSustainability(ctx.Request().Context(), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "sustainability report", http.StatusOK)
}
