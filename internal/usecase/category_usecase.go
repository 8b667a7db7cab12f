package usecase

import (
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

const maxNameLength = 255

type CategoryUseCase interface {
	CreateCategory(category *domain.Category) (*domain.Category, error)
	GetCategoryByID(id int) (*domain.Category, error)
	UpdateCategory(id int, update domain.CategoryUpdate) (*domain.Category, error)
	DeleteCategory(id int) error
	ListCategories() ([]domain.Category, error)
	GetProductsForCategory(id int) ([]domain.Product, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty: %w", domain.ErrValidation)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name cannot exceed %d characters: %w", maxNameLength, domain.ErrValidation)
	}
	return nil
}

func (uc *categoryUseCase) CreateCategory(category *domain.Category) (*domain.Category, error) {
	if err := validateName(category.Name); err != nil {
		uc.log.Warnf("Use Case: Invalid name for category create: %v", err)
		return nil, err
	}

	createdCategory, err := uc.categoryRepo.CreateCategory(category)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", createdCategory.Name, createdCategory.ID)
	return createdCategory, nil
}

func (uc *categoryUseCase) GetCategoryByID(id int) (*domain.Category, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get category with invalid ID: %d", id)
		return nil, fmt.Errorf("invalid category ID: %w", domain.ErrValidation)
	}

	category, err := uc.categoryRepo.GetCategoryByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, err
	}

	return category, nil
}

func (uc *categoryUseCase) UpdateCategory(id int, update domain.CategoryUpdate) (*domain.Category, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid category ID: %d", id)
		return nil, fmt.Errorf("invalid category ID: %w", domain.ErrValidation)
	}
	if update.IsEmpty() {
		uc.log.Warnf("Use Case: Attempted update for category ID %d with no fields", id)
		return nil, fmt.Errorf("no fields provided for update: %w", domain.ErrValidation)
	}
	if update.Name != nil {
		if err := validateName(*update.Name); err != nil {
			uc.log.Warnf("Use Case: Invalid name for category update ID %d: %v", id, err)
			return nil, err
		}
	}

	updatedCategory, err := uc.categoryRepo.UpdateCategory(id, update)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category updated successfully for ID %d", updatedCategory.ID)
	return updatedCategory, nil
}

func (uc *categoryUseCase) DeleteCategory(id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid category ID: %d", id)
		return fmt.Errorf("invalid category ID: %w", domain.ErrValidation)
	}

	err := uc.categoryRepo.DeleteCategory(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category deleted successfully for ID %d", id)
	return nil
}

func (uc *categoryUseCase) ListCategories() ([]domain.Category, error) {
	categories, err := uc.categoryRepo.ListCategories()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}

	return categories, nil
}

func (uc *categoryUseCase) GetProductsForCategory(id int) ([]domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to list products with invalid category ID: %d", id)
		return nil, fmt.Errorf("invalid category ID: %w", domain.ErrValidation)
	}

	products, err := uc.categoryRepo.ListCategoryProducts(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to list products for category ID %d: %v", id, err)
		return nil, err
	}

	return products, nil
}
