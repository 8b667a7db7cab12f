package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes binds the product routes. The filter routes take an
// optional trailing page segment, registered as a second route.
func (h *ProductHandler) RegisterRoutes(router gin.IRouter, requireAdmin gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.GET("/:id/category", h.GetProductCategory)
		products.GET("/category/:category_id", h.ListByCategory)
		products.GET("/category/:category_id/:page", h.ListByCategory)
		products.GET("/price/:min/:max", h.ListByPriceRange)
		products.GET("/price/:min/:max/:page", h.ListByPriceRange)
		products.GET("/sort/:order", h.ListSortedByPrice)
		products.GET("/sort/:order/:page", h.ListSortedByPrice)
		products.GET("/search/:name", h.SearchByName)
		products.GET("/search/:name/:page", h.SearchByName)
		products.POST("", requireAdmin, h.CreateProduct)
		products.PUT("/:id", requireAdmin, h.UpdateProduct)
		products.DELETE("/:id", requireAdmin, h.DeleteProduct)
	}
}

type productCreateRequest struct {
	Name        string           `json:"name" binding:"required,max=255"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	CategoryID  int              `json:"category_id" binding:"required"`
}

type productUpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int             `json:"category_id"`
}

// parsePageParam reads the optional trailing page path segment;
// absent means page 1.
func parsePageParam(c *gin.Context) (int, bool) {
	pageStr := c.Param("page")
	if pageStr == "" {
		return 1, true
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// parsePageSizeQuery reads the optional page_size query parameter;
// absent means the store default.
func parsePageSizeQuery(c *gin.Context) (int, bool) {
	sizeStr := c.Query("page_size")
	if sizeStr == "" {
		return 0, true
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return 0, false
	}
	return size, true
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Product was not created", err)
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
	}

	createdProduct, err := h.useCase.CreateProduct(product)
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", req.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), "Product was not created", err)
		return
	}

	h.log.Infof("Product created successfully: ID %d, Name %s", createdProduct.ID, createdProduct.Name)
	c.JSON(http.StatusCreated, createdProduct)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format", nil)
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Product not found", err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format", nil)
		return
	}

	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	update := domain.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}

	updatedProduct, err := h.useCase.UpdateProduct(id, update)
	if err != nil {
		h.log.Errorf("Failed to update product ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Product was not updated", err)
		return
	}

	h.log.Infof("Product updated successfully: ID %d", updatedProduct.ID)
	c.JSON(http.StatusCreated, updatedProduct)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format", nil)
		return
	}

	if err := h.useCase.DeleteProduct(id); err != nil {
		h.log.Warnf("Failed to delete product ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Product was not deleted", err)
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", id)
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) GetProductCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for category lookup: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format", nil)
		return
	}

	category, err := h.useCase.GetCategoryForProduct(id)
	if err != nil {
		h.log.Warnf("Failed to get category for product ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Category not found", err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			h.log.Warnf("Invalid page query parameter: %s", pageStr)
			ErrorResponse(c, http.StatusBadRequest, "Invalid page parameter", nil)
			return
		}
		page = p
	}

	pageSize, ok := parsePageSizeQuery(c)
	if !ok {
		h.log.Warnf("Invalid page_size query parameter: %s", c.Query("page_size"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid page_size parameter", nil)
		return
	}

	result, err := h.useCase.ListProducts(page, pageSize)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve products", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) ListByCategory(c *gin.Context) {
	categoryIDStr := c.Param("category_id")
	categoryID, err := strconv.Atoi(categoryIDStr)
	if err != nil || categoryID <= 0 {
		h.log.Warnf("Invalid category ID parameter for product filter: %s", categoryIDStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format", nil)
		return
	}

	page, ok := parsePageParam(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid page parameter", nil)
		return
	}

	pageSize, ok := parsePageSizeQuery(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid page_size parameter", nil)
		return
	}

	result, err := h.useCase.ListProductsByCategory(categoryID, page, pageSize)
	if err != nil {
		h.log.Errorf("Failed to filter products by category %d: %v", categoryID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve products", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) ListByPriceRange(c *gin.Context) {
	min, errMin := strconv.ParseFloat(c.Param("min"), 64)
	max, errMax := strconv.ParseFloat(c.Param("max"), 64)
	if errMin != nil || errMax != nil {
		h.log.Warnf("Invalid price bounds: min=%s, max=%s", c.Param("min"), c.Param("max"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid price format", nil)
		return
	}

	page, ok := parsePageParam(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid page parameter", nil)
		return
	}

	pageSize, ok := parsePageSizeQuery(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid page_size parameter", nil)
		return
	}

	result, err := h.useCase.ListProductsByPriceRange(min, max, page, pageSize)
	if err != nil {
		h.log.Errorf("Failed to filter products by price [%f, %f]: %v", min, max, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve products", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) ListSortedByPrice(c *gin.Context) {
	order := c.Param("order")

	page, ok := parsePageParam(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid page parameter", nil)
		return
	}

	pageSize, ok := parsePageSizeQuery(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid page_size parameter", nil)
		return
	}

	result, err := h.useCase.ListProductsSortedByPrice(order, page, pageSize)
	if err != nil {
		h.log.Errorf("Failed to sort products by price (%s): %v", order, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve products", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) SearchByName(c *gin.Context) {
	name := c.Param("name")

	page, ok := parsePageParam(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid page parameter", nil)
		return
	}

	pageSize, ok := parsePageSizeQuery(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid page_size parameter", nil)
		return
	}

	result, err := h.useCase.SearchProductsByName(name, page, pageSize)
	if err != nil {
		h.log.Errorf("Failed to search products by name '%s': %v", name, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve products", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
