package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tozoll/legal-ai-analyzer/internal/analyzer"
	"github.com/tozoll/legal-ai-analyzer/internal/api/middleware"
	"github.com/tozoll/legal-ai-analyzer/internal/archive"
	"github.com/tozoll/legal-ai-analyzer/internal/extract"
	"github.com/tozoll/legal-ai-analyzer/internal/metrics"
	"github.com/tozoll/legal-ai-analyzer/internal/models"
	"github.com/tozoll/legal-ai-analyzer/internal/store"
	"github.com/tozoll/legal-ai-analyzer/internal/utils"
)

// MaxUploadSize is the upload hard cap.
const MaxUploadSize = 20 * 1024 * 1024

// unknownFilename is the placeholder recorded when an analysis fails before
// a trustworthy filename is available.
const unknownFilename = "bilinmiyor"

// AnalyzeHandler runs the request pipeline:
// validated -> archived (best-effort) -> extracted -> analyzed -> logged ->
// responded. Each invocation is an independent transaction; there is no
// dedup or retry.
type AnalyzeHandler struct {
	analyzer analyzer.ContractAnalyzer // nil when no API credential is configured
	logs     *store.LogStore
	archive  *archive.Client
}

func NewAnalyzeHandler(a analyzer.ContractAnalyzer, logs *store.LogStore, arch *archive.Client) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: a, logs: logs, archive: arch}
}

func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	started := time.Now()
	logID := store.NewLogID()
	timestamp := time.Now().UTC()
	username := middleware.Username(c)

	if h.analyzer == nil {
		h.logError(logID, username, timestamp, "ANTHROPIC_API_KEY is not set")
		metrics.AnalyzeRequests.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ANTHROPIC_API_KEY environment variable is not set."})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		metrics.AnalyzeRequests.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !extract.Supported(mimeType, fileHeader.Filename) {
		metrics.AnalyzeRequests.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type. Please upload PDF, DOCX, or TXT files."})
		return
	}
	if fileHeader.Size > MaxUploadSize {
		slog.Warn("Upload rejected, file too large",
			"username", username,
			"filename", fileHeader.Filename,
			"size", utils.FormatFileSize(fileHeader.Size))
		metrics.AnalyzeRequests.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large. Maximum size is 20MB."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		metrics.AnalyzeRequests.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to open file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		metrics.AnalyzeRequests.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read file"})
		return
	}

	// Archiving the original upload is best-effort: a failure is reported
	// to the operator channel and the analysis continues without a path.
	archivePath, err := h.archive.SaveContract(logID, fileHeader.Filename, mimeType, data)
	if err != nil {
		slog.Error("File archiving failed (non-fatal)", "logId", logID, "error", err)
		archivePath = ""
	}

	contractText, err := extract.Extract(data, mimeType, fileHeader.Filename)
	if err != nil || len(strings.TrimSpace(contractText)) < extract.MinTextLength {
		if err != nil {
			slog.Error("Text extraction failed", "logId", logID, "filename", fileHeader.Filename, "error", err)
		}
		h.appendEntry(models.LogEntry{
			ID:                  logID,
			Username:            username,
			Filename:            fileHeader.Filename,
			FileSize:            fileHeader.Size,
			Timestamp:           timestamp,
			Status:              models.StatusError,
			ErrorMessage:        "could not extract meaningful text",
			ContractArchivePath: archivePath,
		})
		metrics.AnalyzeRequests.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract meaningful text from the file. Please ensure the document contains readable text."})
		return
	}

	partyName := strings.TrimSpace(c.PostForm("party"))
	var party *string
	if partyName != "" {
		party = &partyName
	}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), contractText, partyName)
	if err != nil {
		// Full detail stays on the operator channel; the client gets a
		// generic failure.
		slog.Error("Contract analysis failed", "logId", logID, "username", username, "error", err)
		h.logError(logID, username, timestamp, err.Error())
		metrics.AnalyzeRequests.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed. Please try again."})
		return
	}

	h.appendEntry(models.LogEntry{
		ID:                  logID,
		Username:            username,
		Filename:            fileHeader.Filename,
		FileSize:            fileHeader.Size,
		Party:               party,
		Timestamp:           timestamp,
		Status:              models.StatusSuccess,
		ContractArchivePath: archivePath,
	})

	metrics.AnalyzeRequests.WithLabelValues("success").Inc()
	metrics.AnalyzeDuration.Observe(time.Since(started).Seconds())

	c.JSON(http.StatusOK, gin.H{
		"analysis":       analysis,
		"characterCount": len(contractText),
		"party":          party,
		"logId":          logID,
	})
}

// logError writes the error record for failures past the extraction stage,
// where the original filename is no longer trusted.
func (h *AnalyzeHandler) logError(logID, username string, timestamp time.Time, message string) {
	h.appendEntry(models.LogEntry{
		ID:           logID,
		Username:     username,
		Filename:     unknownFilename,
		FileSize:     0,
		Party:        nil,
		Timestamp:    timestamp,
		Status:       models.StatusError,
		ErrorMessage: message,
	})
}

// appendEntry writes an audit record; a logging failure must never take the
// request down with it.
func (h *AnalyzeHandler) appendEntry(entry models.LogEntry) {
	if err := h.logs.Append(entry); err != nil {
		slog.Error("Audit logging failed", "logId", entry.ID, "error", err)
	}
}
