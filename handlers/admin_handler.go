package handlers

import (
	"net/http"
	"strconv"

	"soc-archive-api/helper"
	"soc-archive-api/metrics"
	"soc-archive-api/models"
	"soc-archive-api/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers the administrative surface: approval, PDF upload,
// statistics and the full data export. None of it is authenticated.
type AdminHandler struct {
	workService  services.WorkService
	statsService services.StatsService
	Helper       *helper.HTTPHelper
}

func NewAdminHandler(workService services.WorkService, statsService services.StatsService) *AdminHandler {
	return &AdminHandler{
		workService:  workService,
		statsService: statsService,
		Helper:       &helper.HTTPHelper{},
	}
}

// ApproveWork makes a work visible through the public listing. Re-approving
// an approved work succeeds without changing anything.
func (h *AdminHandler) ApproveWork(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendValidationError(c, "invalid work ID")
		return
	}

	if err := h.workService.ApproveWork(uint(id)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Work approved"})
}

// UploadPDF attaches the multipart "pdf" form file to a work.
func (h *AdminHandler) UploadPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendValidationError(c, "invalid work ID")
		return
	}

	file, err := c.FormFile("pdf")
	if err != nil {
		// Check the work first so a missing record still reports 404.
		if _, getErr := h.workService.GetWork(uint(id)); getErr != nil {
			h.Helper.SendError(c, getErr)
			return
		}
		h.Helper.SendError(c, models.ErrorInvalidFile{Message: "no PDF file provided"})
		return
	}

	if err := h.workService.AttachPDF(uint(id), file); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	metrics.PDFUploadCounter.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "PDF uploaded successfully"})
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportWorks dumps every work, approved or not, in the external
// representation.
func (h *AdminHandler) ExportWorks(c *gin.Context) {
	works, err := h.workService.ExportWorks()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.WorksToResponse(works))
}
