package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

const defaultPageSize = 10

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

// normalizePage clamps pagination parameters to sane bounds: page is
// 1-based, page size defaults to 10 and is capped at 100.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// escapeLike makes LIKE/ILIKE metacharacters in user input match
// literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (r *postgresProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, description, price, category_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	err := r.db.QueryRow(query, product.Name, product.Description, product.Price, product.CategoryID).Scan(&product.ID)
	if err != nil {
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *postgresProductRepository) GetProductByID(id int) (*domain.Product, error) {
	query := `
        SELECT p.id, p.name, p.description, p.price, p.category_id,
               c.id, c.name, c.description
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.id = $1`
	product := &domain.Product{}
	var catID sql.NullInt64
	var catName, catDescription sql.NullString

	err := r.db.QueryRow(query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.CategoryID,
		&catID,
		&catName,
		&catDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}

	// The category is nil when category_id dangles, i.e. the category
	// was deleted after the product was created.
	if catID.Valid {
		product.Category = &domain.Category{
			ID:          int(catID.Int64),
			Name:        catName.String,
			Description: catDescription.String,
		}
	}

	return product, nil
}

func (r *postgresProductRepository) UpdateProduct(id int, update domain.ProductUpdate) (*domain.Product, error) {
	setClauses := []string{}
	args := []interface{}{}
	argCounter := 1

	appendSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argCounter))
		args = append(args, value)
		argCounter++
	}

	if update.Name != nil {
		appendSet("name", *update.Name)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.Price != nil {
		appendSet("price", *update.Price)
	}
	if update.CategoryID != nil {
		appendSet("category_id", *update.CategoryID)
	}

	if len(setClauses) == 0 {
		return r.GetProductByID(id)
	}

	query := "UPDATE products SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", argCounter)
	args = append(args, id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		r.log.Errorf("Failed to update product ID %d: %v", id, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating product ID %d: %v", id, err)
		return nil, fmt.Errorf("could not confirm product update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Product with ID %d not found for update", id)
		return nil, fmt.Errorf("product with id %d %w", id, domain.ErrNotFound)
	}

	r.log.Infof("Product updated successfully with ID: %d", id)
	return r.GetProductByID(id)
}

func (r *postgresProductRepository) DeleteProduct(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return fmt.Errorf("product with id %d %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresProductRepository) GetProductCategory(productID int) (*domain.Category, error) {
	query := `
        SELECT c.id, c.name, c.description
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.id = $1`
	var catID sql.NullInt64
	var catName, catDescription sql.NullString

	err := r.db.QueryRow(query, productID).Scan(&catID, &catName, &catDescription)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", productID)
			return nil, fmt.Errorf("product with id %d %w", productID, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get category for product ID %d: %v", productID, err)
		return nil, fmt.Errorf("could not get product category: %w", err)
	}

	if !catID.Valid {
		r.log.Warnf("Product ID %d references a category that no longer exists", productID)
		return nil, fmt.Errorf("category for product %d %w", productID, domain.ErrNotFound)
	}

	return &domain.Category{
		ID:          int(catID.Int64),
		Name:        catName.String,
		Description: catDescription.String,
	}, nil
}

func (r *postgresProductRepository) ListProducts(page, pageSize int) (*domain.ProductPage, error) {
	return r.queryPage("", "id ASC", page, pageSize)
}

func (r *postgresProductRepository) ListProductsByCategory(categoryID, page, pageSize int) (*domain.ProductPage, error) {
	return r.queryPage("WHERE category_id = $1", "id ASC", page, pageSize, categoryID)
}

func (r *postgresProductRepository) ListProductsByPriceRange(min, max float64, page, pageSize int) (*domain.ProductPage, error) {
	// BETWEEN is inclusive on both ends.
	return r.queryPage("WHERE price BETWEEN $1 AND $2", "id ASC", page, pageSize, min, max)
}

func (r *postgresProductRepository) ListProductsSortedByPrice(order string, page, pageSize int) (*domain.ProductPage, error) {
	direction := "ASC"
	if strings.EqualFold(order, "desc") {
		direction = "DESC"
	}
	// Ties broken by id so pages are stable across requests.
	return r.queryPage("", "price "+direction+", id ASC", page, pageSize)
}

func (r *postgresProductRepository) SearchProductsByName(name string, page, pageSize int) (*domain.ProductPage, error) {
	// Unanchored, case-insensitive substring match.
	pattern := "%" + escapeLike(name) + "%"
	return r.queryPage("WHERE name ILIKE $1", "id ASC", page, pageSize, pattern)
}

// queryPage runs the shared count-then-select pattern behind every
// paginated product listing. The where clause must use $1..$n for its
// own arguments; LIMIT and OFFSET placeholders are appended after them.
func (r *postgresProductRepository) queryPage(where, orderBy string, page, pageSize int, args ...interface{}) (*domain.ProductPage, error) {
	page, pageSize = normalizePage(page, pageSize)

	countQuery := "SELECT COUNT(*) FROM products"
	if where != "" {
		countQuery += " " + where
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		r.log.Errorf("Failed to count products: %v", err)
		return nil, fmt.Errorf("could not count products: %w", err)
	}

	listQuery := "SELECT id, name, description, price, category_id FROM products"
	if where != "" {
		listQuery += " " + where
	}
	listQuery += fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderBy, len(args)+1, len(args)+2)
	listArgs := append(append([]interface{}{}, args...), pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(listQuery, listArgs...)
	if err != nil {
		r.log.Errorf("Failed to list products (page %d, size %d): %v", page, pageSize, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.CategoryID); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	r.log.Infof("Retrieved %d products (page: %d, size: %d, total: %d)", len(products), page, pageSize, total)
	return &domain.ProductPage{
		Products: products,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}
