package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/app/report/render"
	"github.com/yigit/college/internal/app/services"
	"github.com/yigit/college/internal/config"
	"github.com/yigit/college/internal/middleware"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/pkg/helpers"
)

// ReportController serves the enrollment report read-only
type ReportController struct {
	reports        map[string]services.ReportService
	defaultReport  services.ReportService
	defaultFormat  string
	exportBasename string
}

// NewReportController creates a controller serving reports built by defaultReport.
// Additional services let callers pick another join strategy per request.
func NewReportController(defaultReport services.ReportService, defaultFormat string, others ...services.ReportService) *ReportController {
	reports := map[string]services.ReportService{defaultReport.Strategy(): defaultReport}
	for _, svc := range others {
		if _, ok := reports[svc.Strategy()]; !ok {
			reports[svc.Strategy()] = svc
		}
	}
	if config.ValidateFormat(defaultFormat) != nil {
		defaultFormat = config.FormatJSON
	}
	return &ReportController{
		reports:        reports,
		defaultReport:  defaultReport,
		defaultFormat:  defaultFormat,
		exportBasename: "enrollments",
	}
}

func (c *ReportController) reportService(ctx *gin.Context) (services.ReportService, error) {
	strategy := ctx.Query("strategy")
	if strategy == "" {
		return c.defaultReport, nil
	}
	svc, ok := c.reports[strategy]
	if !ok {
		return nil, apperrors.NewBadRequestError("strategy", fmt.Sprintf("unsupported report strategy %q", strategy))
	}
	return svc, nil
}

// GetEnrollmentReport returns the joined enrollment rows
// @Summary Get enrollment report
// @Tags enrollments
// @Produce json
// @Param strategy query string false "Join strategy" Enums(pipeline, memory)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.StructuredResponse{data=dto.EnrollmentReportData}
// @Failure 400 {object} dto.ErrorResponse "Unsupported strategy"
// @Failure 500 {object} dto.ErrorResponse "Database query failed"
// @Router /enrollments/report [get]
func (c *ReportController) GetEnrollmentReport(ctx *gin.Context) {
	svc, err := c.reportService(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows, err := svc.BuildEnrollmentReport(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	data := dto.NewEnrollmentReportData(svc.Strategy(), rows)
	if page, size, paged := helpers.ParsePaginationParams(ctx); paged {
		start, end := helpers.CalculateSliceIndices(page, size, len(data.Rows))
		info := helpers.NewPaginationInfo(int64(len(data.Rows)), page, size)
		data.Rows = data.Rows[start:end]
		data.Count = len(data.Rows)
		data.Pagination = &info
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(data, "Enrollment report generated"))
}

// ExportEnrollmentReport returns the report as a downloadable file
// @Summary Export enrollment report
// @Tags enrollments
// @Produce application/json,application/yaml,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Output format" Enums(json, yaml, xlsx)
// @Param strategy query string false "Join strategy" Enums(pipeline, memory)
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Unsupported format or strategy"
// @Router /enrollments/report/export [get]
func (c *ReportController) ExportEnrollmentReport(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", c.defaultFormat)
	if err := config.ValidateFormat(format); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("format", err.Error()))
		return
	}

	svc, err := c.reportService(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows, err := svc.BuildEnrollmentReport(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, format, rows); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, c.exportBasename, format))
	ctx.Data(http.StatusOK, render.ContentType(format), buf.Bytes())
}
