package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tozoll/legal-ai-analyzer/internal/archive"
	"github.com/tozoll/legal-ai-analyzer/internal/models"
	"github.com/tozoll/legal-ai-analyzer/internal/report"
	"github.com/tozoll/legal-ai-analyzer/internal/store"
	"github.com/tozoll/legal-ai-analyzer/internal/utils"
)

// ReportHandler exports an analysis as a downloadable PDF.
type ReportHandler struct {
	archive *archive.Client
}

func NewReportHandler(arch *archive.Client) *ReportHandler {
	return &ReportHandler{archive: arch}
}

// Export renders the posted analysis. The body is re-normalized before
// rendering because it crossed the client boundary and is untrusted again.
func (h *ReportHandler) Export(c *gin.Context) {
	var input struct {
		Analysis models.ContractAnalysis `json:"analysis"`
		Filename string                  `json:"filename"`
		Party    string                  `json:"party"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek."})
		return
	}
	input.Analysis.Normalize()

	pdf, err := report.Render(&input.Analysis, input.Filename, input.Party)
	if err != nil {
		slog.Error("Report rendering failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Rapor oluşturulamadı."})
		return
	}

	// Keep a best-effort copy next to the archived contracts.
	reportID := store.NewLogID()
	if _, err := h.archive.SaveReport(reportID, input.Filename, pdf); err != nil {
		slog.Error("Report archiving failed (non-fatal)", "reportId", reportID, "error", err)
	}

	downloadName := fmt.Sprintf("%s_report.pdf", utils.BaseWithoutExt(input.Filename))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
