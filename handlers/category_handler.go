package handlers

import (
	"net/http"

	"soc-archive-api/helper"
	"soc-archive-api/models"
	"soc-archive-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		Helper:          &helper.HTTPHelper{},
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
