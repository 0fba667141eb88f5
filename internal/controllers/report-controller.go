package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/services"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetMaintenanceReport(ctx echo.Context) error {
	filter, format := c.parseFilters(ctx)

	items, total, err := c.reportService.GetMaintenanceReport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, items)
	}

	return utils.SuccessResponse(ctx, map[string]interface{}{
		"list":        items,
		"total_count": total,
	}, "maintenance report", http.StatusOK)
}

func (c *ReportController) parseFilters(ctx echo.Context) (entities.ReportFilter, string) {
	var filter entities.ReportFilter
	format := strings.ToLower(ctx.QueryParam("format"))

	filter.Page, _ = strconv.Atoi(ctx.QueryParam("page"))
	filter.PerPage, _ = strconv.Atoi(ctx.QueryParam("per_page"))
	if filter.PerPage <= 0 {
		filter.PerPage = 50
	}
	if format == "xlsx" {
		// Export always covers the full filtered range.
		filter.Page = 1
		filter.PerPage = 100000
	}

	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse("2006-01-02", df); err == nil {
			filter.DateFrom = &t
		}
	}
	if dt := ctx.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse("2006-01-02", dt); err == nil {
			filter.DateTo = &t
		}
	}

	for _, v := range strings.Split(ctx.QueryParam("type"), ",") {
		if constants.IsValidType(v) {
			filter.Types = append(filter.Types, v)
		}
	}
	for _, v := range strings.Split(ctx.QueryParam("status"), ",") {
		if constants.IsValidStatus(v) {
			filter.Statuses = append(filter.Statuses, v)
		}
	}

	return filter, format
}

var reportHeaders = []string{
	"Request ID", "Subject", "Equipment", "Serial Number", "Type", "Priority",
	"Status", "Technician", "Duration (h)", "Cost (USD)", "Scheduled", "Created", "Completed",
}

func rowToSlice(item entities.ReportItem) []interface{} {
	dateFmt := "2006-01-02"
	var completedAt string
	if item.CompletedAt.Valid {
		completedAt = item.CompletedAt.Time.Format(dateFmt)
	}

	return []interface{}{
		item.RequestID, item.Subject, item.EquipmentName, item.SerialNumber,
		item.Type, item.Priority, item.Status, item.TechnicianName.String,
		item.Duration, fmt.Sprintf("%.2f", item.Cost),
		item.ScheduledDate.Format(dateFmt), item.CreatedAt.Format(dateFmt), completedAt,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, items []entities.ReportItem) error {
	f := excelize.NewFile()
	sheet := "Maintenance Report"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "C", 30)
	f.SetColWidth(sheet, "D", "D", 20)
	f.SetColWidth(sheet, "H", "H", 25)
	f.SetColWidth(sheet, "K", "M", 14)

	fileName := fmt.Sprintf("maintenance_report_%s_%s.xlsx",
		time.Now().Format("2006-01-02"), uuid.NewString()[:8])
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
