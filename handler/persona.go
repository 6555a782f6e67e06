package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"persona-service/metrics"
	"persona-service/model"
	"persona-service/reddit"
	"persona-service/store"
	"persona-service/utils"

	"github.com/gin-gonic/gin"
)

// Analyzer runs one persona analysis end to end.
type Analyzer interface {
	AnalyzeUser(ctx context.Context, username string) (*model.PersonaResult, *model.Report, error)
}

// ReportReader serves stored reports back for download and listing.
type ReportReader interface {
	GetByFilename(ctx context.Context, filename string) (*model.Report, error)
	ListByUser(ctx context.Context, username string) ([]model.Report, error)
}

type PersonaHandler struct {
	analyzer Analyzer
	reports  ReportReader
}

func NewPersonaHandler(analyzer Analyzer, reports ReportReader) *PersonaHandler {
	return &PersonaHandler{analyzer: analyzer, reports: reports}
}

// AnalyzeProfile handles an analysis request for a Reddit profile URL
// or username. Unparseable identifiers are rejected before any fetch.
func (h *PersonaHandler) AnalyzeProfile(c *gin.Context) {
	var req model.AnalyzeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := utils.ExtractUsername(req.ProfileURL)
	if username == "" {
		log.Printf("[WARN] Could not extract username from: %s", req.ProfileURL)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid Reddit profile URL or username"})
		return
	}

	log.Printf("[INFO] AnalyzeProfile called for u/%s", username)

	result, report, err := h.analyzer.AnalyzeUser(c.Request.Context(), username)
	if err != nil {
		metrics.PersonaAnalysesTotal.WithLabelValues("error", "api").Inc()
		log.Printf("[ERROR] Analysis failed for u/%s: %v", username, err)
		c.JSON(analysisErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	metrics.PersonaAnalysesTotal.WithLabelValues("success", "api").Inc()
	log.Printf("[INFO] Analysis completed for u/%s: %d interests, %d traits",
		username, len(result.Interests), len(result.Traits))

	c.JSON(http.StatusOK, gin.H{
		"persona":     result,
		"report_file": report.Filename,
	})
}

// DownloadReport serves a stored report as a plain-text attachment.
func (h *PersonaHandler) DownloadReport(c *gin.Context) {
	filename := c.Param("filename")

	report, err := h.reports.GetByFilename(c.Request.Context(), filename)
	if errors.Is(err, store.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	if err != nil {
		log.Printf("[ERROR] Failed to load report %s: %v", filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report"})
		return
	}

	metrics.ReportDownloadsTotal.Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report.Body))
}

// ListReports returns stored report metadata for a user, newest first.
func (h *PersonaHandler) ListReports(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	reports, err := h.reports.ListByUser(c.Request.Context(), username)
	if err != nil {
		log.Printf("[ERROR] Failed to list reports for u/%s: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(reports),
		"reports": reports,
	})
}

func analysisErrorStatus(err error) int {
	switch {
	case errors.Is(err, reddit.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, reddit.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}
