package usecase

import (
	"fmt"

	"catalog_service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProductByID(id int) (*domain.Product, error)
	UpdateProduct(id int, update domain.ProductUpdate) (*domain.Product, error)
	DeleteProduct(id int) error
	GetCategoryForProduct(productID int) (*domain.Category, error)

	ListProducts(page, pageSize int) (*domain.ProductPage, error)
	ListProductsByCategory(categoryID, page, pageSize int) (*domain.ProductPage, error)
	ListProductsByPriceRange(min, max float64, page, pageSize int) (*domain.ProductPage, error)
	ListProductsSortedByPrice(order string, page, pageSize int) (*domain.ProductPage, error)
	SearchProductsByName(name string, page, pageSize int) (*domain.ProductPage, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("price cannot be negative: %w", domain.ErrValidation)
	}
	return nil
}

// requireCategory is the write-time referential check: a product may
// only be created with, or moved to, a category that exists.
func (uc *productUseCase) requireCategory(categoryID int) error {
	if categoryID <= 0 {
		return fmt.Errorf("category_id must be positive: %w", domain.ErrValidation)
	}
	if _, err := uc.categoryRepo.GetCategoryByID(categoryID); err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found during product write: %v", categoryID, err)
		return fmt.Errorf("category with id %d does not exist: %w", categoryID, domain.ErrValidation)
	}
	return nil
}

func (uc *productUseCase) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if err := validateName(product.Name); err != nil {
		uc.log.Warnf("Use Case: Invalid name for product create: %v", err)
		return nil, err
	}
	if err := validatePrice(product.Price); err != nil {
		uc.log.Warnf("Use Case: Invalid price for product '%s': %v", product.Name, err)
		return nil, err
	}
	if err := uc.requireCategory(product.CategoryID); err != nil {
		return nil, err
	}

	createdProduct, err := uc.productRepo.CreateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", createdProduct.Name, createdProduct.ID)
	return createdProduct, nil
}

func (uc *productUseCase) GetProductByID(id int) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, fmt.Errorf("invalid product ID: %w", domain.ErrValidation)
	}

	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}

	return product, nil
}

func (uc *productUseCase) UpdateProduct(id int, update domain.ProductUpdate) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid product ID: %d", id)
		return nil, fmt.Errorf("invalid product ID: %w", domain.ErrValidation)
	}
	if update.IsEmpty() {
		uc.log.Warnf("Use Case: Attempted update for product ID %d with no fields", id)
		return nil, fmt.Errorf("no fields provided for update: %w", domain.ErrValidation)
	}
	if update.Name != nil {
		if err := validateName(*update.Name); err != nil {
			uc.log.Warnf("Use Case: Invalid name for product update ID %d: %v", id, err)
			return nil, err
		}
	}
	if update.Price != nil {
		if err := validatePrice(*update.Price); err != nil {
			uc.log.Warnf("Use Case: Invalid price for product update ID %d: %v", id, err)
			return nil, err
		}
	}
	if update.CategoryID != nil {
		if err := uc.requireCategory(*update.CategoryID); err != nil {
			return nil, err
		}
	}

	updatedProduct, err := uc.productRepo.UpdateProduct(id, update)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d", updatedProduct.ID)
	return updatedProduct, nil
}

func (uc *productUseCase) DeleteProduct(id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid product ID: %d", id)
		return fmt.Errorf("invalid product ID: %w", domain.ErrValidation)
	}

	err := uc.productRepo.DeleteProduct(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %d", id)
	return nil
}

func (uc *productUseCase) GetCategoryForProduct(productID int) (*domain.Category, error) {
	if productID <= 0 {
		uc.log.Warnf("Use Case: Attempted to get category with invalid product ID: %d", productID)
		return nil, fmt.Errorf("invalid product ID: %w", domain.ErrValidation)
	}

	category, err := uc.productRepo.GetProductCategory(productID)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category for product ID %d: %v", productID, err)
		return nil, err
	}

	return category, nil
}

func (uc *productUseCase) ListProducts(page, pageSize int) (*domain.ProductPage, error) {
	result, err := uc.productRepo.ListProducts(page, pageSize)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}
	return result, nil
}

func (uc *productUseCase) ListProductsByCategory(categoryID, page, pageSize int) (*domain.ProductPage, error) {
	if categoryID <= 0 {
		uc.log.Warnf("Use Case: Attempted list by category with invalid category ID: %d", categoryID)
		return nil, fmt.Errorf("invalid category ID: %w", domain.ErrValidation)
	}

	// A category with no products is an empty page, not an error.
	result, err := uc.productRepo.ListProductsByCategory(categoryID, page, pageSize)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for category %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not retrieve products for category %d: %w", categoryID, err)
	}
	return result, nil
}

func (uc *productUseCase) ListProductsByPriceRange(min, max float64, page, pageSize int) (*domain.ProductPage, error) {
	if min < 0 || max < 0 {
		uc.log.Warnf("Use Case: Negative price bound (min: %f, max: %f)", min, max)
		return nil, fmt.Errorf("price bounds cannot be negative: %w", domain.ErrValidation)
	}
	if min > max {
		uc.log.Warnf("Use Case: Inverted price range (min: %f, max: %f)", min, max)
		return nil, fmt.Errorf("min price cannot exceed max price: %w", domain.ErrValidation)
	}

	result, err := uc.productRepo.ListProductsByPriceRange(min, max, page, pageSize)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to filter products by price: %v", err)
		return nil, fmt.Errorf("could not retrieve products by price: %w", err)
	}
	return result, nil
}

func (uc *productUseCase) ListProductsSortedByPrice(order string, page, pageSize int) (*domain.ProductPage, error) {
	if order != "asc" && order != "desc" {
		uc.log.Warnf("Use Case: Invalid sort order: %s", order)
		return nil, fmt.Errorf("sort order must be 'asc' or 'desc': %w", domain.ErrValidation)
	}

	result, err := uc.productRepo.ListProductsSortedByPrice(order, page, pageSize)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to sort products by price: %v", err)
		return nil, fmt.Errorf("could not retrieve sorted products: %w", err)
	}
	return result, nil
}

func (uc *productUseCase) SearchProductsByName(name string, page, pageSize int) (*domain.ProductPage, error) {
	if name == "" {
		uc.log.Warn("Use Case: Attempted search with empty name")
		return nil, fmt.Errorf("search term cannot be empty: %w", domain.ErrValidation)
	}

	result, err := uc.productRepo.SearchProductsByName(name, page, pageSize)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to search products by name '%s': %v", name, err)
		return nil, fmt.Errorf("could not search products: %w", err)
	}
	return result, nil
}
