package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes binds the category routes. Mutating routes go behind
// the admin gate; reads are open.
func (h *CategoryHandler) RegisterRoutes(router gin.IRouter, requireAdmin gin.HandlerFunc) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategoryByID)
		categories.GET("/:id/products", h.ListCategoryProducts)
		categories.POST("", requireAdmin, h.CreateCategory)
		categories.PUT("/:id", requireAdmin, h.UpdateCategory)
		categories.DELETE("/:id", requireAdmin, h.DeleteCategory)
	}
}

type categoryCreateRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type categoryUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func parseIDParam(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req categoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Category was not created", err)
		return
	}

	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	createdCategory, err := h.useCase.CreateCategory(category)
	if err != nil {
		h.log.Errorf("Failed to create category '%s': %v", req.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), "Category was not created", err)
		return
	}

	h.log.Infof("Category created successfully: ID %d, Name %s", createdCategory.ID, createdCategory.Name)
	c.JSON(http.StatusCreated, createdCategory)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format", nil)
		return
	}

	category, err := h.useCase.GetCategoryByID(id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Category not found", err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter for update: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format", nil)
		return
	}

	var req categoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for update category ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	update := domain.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
	}

	updatedCategory, err := h.useCase.UpdateCategory(id, update)
	if err != nil {
		h.log.Errorf("Failed to update category ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Category was not updated", err)
		return
	}

	h.log.Infof("Category updated successfully: ID %d", updatedCategory.ID)
	c.JSON(http.StatusCreated, updatedCategory)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter for delete: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format", nil)
		return
	}

	if err := h.useCase.DeleteCategory(id); err != nil {
		h.log.Warnf("Failed to delete category ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Category was not deleted", err)
		return
	}

	h.log.Infof("Category deleted successfully: ID %d", id)
	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories()
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve categories", err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) ListCategoryProducts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter for products listing: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format", nil)
		return
	}

	products, err := h.useCase.GetProductsForCategory(id)
	if err != nil {
		h.log.Warnf("Failed to list products for category ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Products not found", err)
		return
	}

	c.JSON(http.StatusOK, products)
}
