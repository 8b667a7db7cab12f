package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresCategoryRepository) CreateCategory(category *domain.Category) (*domain.Category, error) {
	query := `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(query, category.Name, category.Description).Scan(&category.ID)
	if err != nil {
		r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}
	category.Products = []domain.Product{}
	r.log.Infof("Category created successfully with ID: %d, Name: %s", category.ID, category.Name)
	return category, nil
}

func (r *postgresCategoryRepository) GetCategoryByID(id int) (*domain.Category, error) {
	query := `SELECT id, name, description FROM categories WHERE id = $1`
	category := &domain.Category{}
	err := r.db.QueryRow(query, id).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, fmt.Errorf("category with id %d %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}

	products, err := r.queryProductsOfCategory(id)
	if err != nil {
		return nil, err
	}
	category.Products = products

	return category, nil
}

func (r *postgresCategoryRepository) UpdateCategory(id int, update domain.CategoryUpdate) (*domain.Category, error) {
	setClauses := []string{}
	args := []interface{}{}
	argCounter := 1

	if update.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argCounter))
		args = append(args, *update.Name)
		argCounter++
	}
	if update.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argCounter))
		args = append(args, *update.Description)
		argCounter++
	}

	if len(setClauses) == 0 {
		return r.GetCategoryByID(id)
	}

	query := "UPDATE categories SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id, name, description", argCounter)
	args = append(args, id)

	category := &domain.Category{}
	err := r.db.QueryRow(query, args...).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found for update", id)
			return nil, fmt.Errorf("category with id %d %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to update category ID %d: %v", id, err)
		return nil, fmt.Errorf("could not update category: %w", err)
	}

	products, err := r.queryProductsOfCategory(id)
	if err != nil {
		return nil, err
	}
	category.Products = products

	r.log.Infof("Category updated successfully with ID: %d", category.ID)
	return category, nil
}

func (r *postgresCategoryRepository) DeleteCategory(id int) error {
	query := `DELETE FROM categories WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.log.Errorf("Failed to delete category ID %d: %v", id, err)
		return fmt.Errorf("could not delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting category ID %d: %v", id, err)
		return fmt.Errorf("could not confirm category deletion: %w", err)
	}

	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent category ID %d", id)
		return fmt.Errorf("category with id %d %w", id, domain.ErrNotFound)
	}

	r.log.Infof("Category deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresCategoryRepository) ListCategories() ([]domain.Category, error) {
	query := `SELECT id, name, description FROM categories ORDER BY id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	ids := []int64{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("error scanning category data: %w", err)
		}
		category.Products = []domain.Product{}
		categories = append(categories, category)
		ids = append(ids, int64(category.ID))
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	if len(categories) == 0 {
		return categories, nil
	}

	// One grouped query instead of a product lookup per category.
	productQuery := `
        SELECT id, name, description, price, category_id
        FROM products
        WHERE category_id = ANY($1)
        ORDER BY id ASC`
	productRows, err := r.db.Query(productQuery, pq.Array(ids))
	if err != nil {
		r.log.Errorf("Failed to load products for categories: %v", err)
		return nil, fmt.Errorf("could not load category products: %w", err)
	}
	defer productRows.Close()

	byCategory := make(map[int][]domain.Product)
	for productRows.Next() {
		var product domain.Product
		if err := productRows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.CategoryID); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		byCategory[product.CategoryID] = append(byCategory[product.CategoryID], product)
	}
	if err = productRows.Err(); err != nil {
		r.log.Errorf("Error during category products iteration: %v", err)
		return nil, fmt.Errorf("error iterating category products: %w", err)
	}

	for i := range categories {
		if products, ok := byCategory[categories[i].ID]; ok {
			categories[i].Products = products
		}
	}

	r.log.Infof("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *postgresCategoryRepository) ListCategoryProducts(id int) ([]domain.Product, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.log.Errorf("Failed to check category ID %d: %v", id, err)
		return nil, fmt.Errorf("could not check category existence: %w", err)
	}
	if !exists {
		r.log.Warnf("Category with ID %d not found", id)
		return nil, fmt.Errorf("category with id %d %w", id, domain.ErrNotFound)
	}

	return r.queryProductsOfCategory(id)
}

func (r *postgresCategoryRepository) queryProductsOfCategory(id int) ([]domain.Product, error) {
	query := `
        SELECT id, name, description, price, category_id
        FROM products
        WHERE category_id = $1
        ORDER BY id ASC`
	rows, err := r.db.Query(query, id)
	if err != nil {
		r.log.Errorf("Failed to list products for category %d: %v", id, err)
		return nil, fmt.Errorf("could not list category products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.CategoryID); err != nil {
			r.log.Errorf("Failed to scan product row for category %d: %v", id, err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during category products iteration: %v", err)
		return nil, fmt.Errorf("error iterating category products: %w", err)
	}

	return products, nil
}
