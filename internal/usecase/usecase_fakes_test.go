package usecase

import (
	"fmt"
	"io"
	"strings"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeCategoryRepo is an in-memory CategoryRepository.
type fakeCategoryRepo struct {
	categories map[int]domain.Category
	products   map[int][]domain.Product
	nextID     int
	failWith   error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: map[int]domain.Category{},
		products:   map[int][]domain.Product{},
		nextID:     1,
	}
}

func (f *fakeCategoryRepo) CreateCategory(category *domain.Category) (*domain.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	category.ID = f.nextID
	f.nextID++
	f.categories[category.ID] = *category
	return category, nil
}

func (f *fakeCategoryRepo) GetCategoryByID(id int) (*domain.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	category, ok := f.categories[id]
	if !ok {
		return nil, fmt.Errorf("category with id %d %w", id, domain.ErrNotFound)
	}
	category.Products = f.products[id]
	return &category, nil
}

func (f *fakeCategoryRepo) UpdateCategory(id int, update domain.CategoryUpdate) (*domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, fmt.Errorf("category with id %d %w", id, domain.ErrNotFound)
	}
	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Description != nil {
		category.Description = *update.Description
	}
	f.categories[id] = category
	return &category, nil
}

func (f *fakeCategoryRepo) DeleteCategory(id int) error {
	if _, ok := f.categories[id]; !ok {
		return fmt.Errorf("category with id %d %w", id, domain.ErrNotFound)
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) ListCategories() ([]domain.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	result := []domain.Category{}
	for id := 1; id < f.nextID; id++ {
		if category, ok := f.categories[id]; ok {
			category.Products = f.products[id]
			result = append(result, category)
		}
	}
	return result, nil
}

func (f *fakeCategoryRepo) ListCategoryProducts(id int) ([]domain.Product, error) {
	if _, ok := f.categories[id]; !ok {
		return nil, fmt.Errorf("category with id %d %w", id, domain.ErrNotFound)
	}
	products := f.products[id]
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// fakeProductRepo is an in-memory ProductRepository with enough
// filtering logic to exercise the use cases.
type fakeProductRepo struct {
	products map[int]domain.Product
	nextID   int
	failWith error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[int]domain.Product{},
		nextID:   1,
	}
}

func (f *fakeProductRepo) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = *product
	return product, nil
}

func (f *fakeProductRepo) GetProductByID(id int) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product with id %d %w", id, domain.ErrNotFound)
	}
	return &product, nil
}

func (f *fakeProductRepo) UpdateProduct(id int, update domain.ProductUpdate) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product with id %d %w", id, domain.ErrNotFound)
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.CategoryID != nil {
		product.CategoryID = *update.CategoryID
	}
	f.products[id] = product
	return &product, nil
}

func (f *fakeProductRepo) DeleteProduct(id int) error {
	if _, ok := f.products[id]; !ok {
		return fmt.Errorf("product with id %d %w", id, domain.ErrNotFound)
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) GetProductCategory(productID int) (*domain.Category, error) {
	if _, ok := f.products[productID]; !ok {
		return nil, fmt.Errorf("product with id %d %w", productID, domain.ErrNotFound)
	}
	return &domain.Category{ID: f.products[productID].CategoryID}, nil
}

func (f *fakeProductRepo) paginate(matching []domain.Product, page, pageSize int) *domain.ProductPage {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	total := int64(len(matching))
	start := (page - 1) * pageSize
	if start > len(matching) {
		start = len(matching)
	}
	end := start + pageSize
	if end > len(matching) {
		end = len(matching)
	}
	return &domain.ProductPage{
		Products: matching[start:end],
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
}

func (f *fakeProductRepo) all() []domain.Product {
	result := []domain.Product{}
	for id := 1; id < f.nextID; id++ {
		if product, ok := f.products[id]; ok {
			result = append(result, product)
		}
	}
	return result
}

func (f *fakeProductRepo) ListProducts(page, pageSize int) (*domain.ProductPage, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.paginate(f.all(), page, pageSize), nil
}

func (f *fakeProductRepo) ListProductsByCategory(categoryID, page, pageSize int) (*domain.ProductPage, error) {
	matching := []domain.Product{}
	for _, product := range f.all() {
		if product.CategoryID == categoryID {
			matching = append(matching, product)
		}
	}
	return f.paginate(matching, page, pageSize), nil
}

func (f *fakeProductRepo) ListProductsByPriceRange(min, max float64, page, pageSize int) (*domain.ProductPage, error) {
	matching := []domain.Product{}
	for _, product := range f.all() {
		price, _ := product.Price.Float64()
		if price >= min && price <= max {
			matching = append(matching, product)
		}
	}
	return f.paginate(matching, page, pageSize), nil
}

func (f *fakeProductRepo) ListProductsSortedByPrice(order string, page, pageSize int) (*domain.ProductPage, error) {
	matching := f.all()
	for i := 0; i < len(matching); i++ {
		for j := i + 1; j < len(matching); j++ {
			less := matching[j].Price.LessThan(matching[i].Price)
			if order == "desc" {
				less = matching[j].Price.GreaterThan(matching[i].Price)
			}
			if less {
				matching[i], matching[j] = matching[j], matching[i]
			}
		}
	}
	return f.paginate(matching, page, pageSize), nil
}

func (f *fakeProductRepo) SearchProductsByName(name string, page, pageSize int) (*domain.ProductPage, error) {
	matching := []domain.Product{}
	for _, product := range f.all() {
		if containsFold(product.Name, name) {
			matching = append(matching, product)
		}
	}
	return f.paginate(matching, page, pageSize), nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[string]domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  map[string]domain.User{},
		nextID: 1,
	}
}

func (f *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return nil, fmt.Errorf("user with email '%s' %w", user.Email, domain.ErrConflict)
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = *user
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("user with email %s %w", email, domain.ErrNotFound)
	}
	return &user, nil
}

func (f *fakeUserRepo) GetUserByID(id int64) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with id %d %w", id, domain.ErrNotFound)
}
