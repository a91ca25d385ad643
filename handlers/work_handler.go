package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"soc-archive-api/helper"
	"soc-archive-api/models"
	"soc-archive-api/services"

	"github.com/gin-gonic/gin"
)

type WorkHandler struct {
	workService services.WorkService
	Helper      *helper.HTTPHelper
}

func NewWorkHandler(workService services.WorkService) *WorkHandler {
	return &WorkHandler{
		workService: workService,
		Helper:      &helper.HTTPHelper{},
	}
}

// GetWorks lists approved works, narrowed by the optional filter and search
// query parameters.
func (h *WorkHandler) GetWorks(c *gin.Context) {
	var params models.WorkListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendValidationError(c, err.Error())
		return
	}

	works, err := h.workService.ListWorks(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.WorksToResponse(works))
}

func (h *WorkHandler) CreateWork(c *gin.Context) {
	var req models.CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err.Error())
		return
	}

	work, err := h.workService.CreateWork(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, work.ToResponse())
}

func (h *WorkHandler) GetWork(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendValidationError(c, "invalid work ID")
		return
	}

	work, err := h.workService.GetWork(uint(id))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, work.ToResponse())
}

// DownloadPDF streams the work's attachment as a file download.
func (h *WorkHandler) DownloadPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendValidationError(c, "invalid work ID")
		return
	}

	file, filename, err := h.workService.OpenPDF(uint(id))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		h.Helper.SendError(c, models.ErrorInternalServer{Message: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.DataFromReader(http.StatusOK, info.Size(), "application/pdf", file, nil)
}

// AnonymizeWork removes personal data from a work record for GDPR
// compliance.
func (h *WorkHandler) AnonymizeWork(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendValidationError(c, "invalid work ID")
		return
	}

	if err := h.workService.AnonymizeWork(uint(id)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Personal data removed"})
}
