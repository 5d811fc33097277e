package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/etec-portal-api/internal/identity"
	"github.com/noah-isme/etec-portal-api/internal/service"
)

// ExportHandler serves marks report downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Marks godoc
// @Summary Export marks report
// @Description Download a student's marks as CSV or PDF. Students export their own; admins pass regNo.
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param regNo query string false "Registration number (admin only)"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /exports/marks [get]
func (h *ExportHandler) Marks(c *gin.Context) {
	regNo, err := resolveRegNo(c)
	if err != nil {
		respondError(c, err)
		return
	}

	format := c.DefaultQuery("format", service.FormatCSV)
	raw, contentType, err := h.exports.MarksReport(c.Request.Context(), regNo, format)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("marks-%s.%s", identity.Normalize(regNo), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, raw)
}
