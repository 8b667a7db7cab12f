package delivery

import (
	"io"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeCategoryUseCase returns canned values per method.
type fakeCategoryUseCase struct {
	category   *domain.Category
	categories []domain.Category
	products   []domain.Product
	err        error

	lastID     int
	lastUpdate domain.CategoryUpdate
}

func (f *fakeCategoryUseCase) CreateCategory(category *domain.Category) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	category.ID = 1
	return category, nil
}

func (f *fakeCategoryUseCase) GetCategoryByID(id int) (*domain.Category, error) {
	f.lastID = id
	return f.category, f.err
}

func (f *fakeCategoryUseCase) UpdateCategory(id int, update domain.CategoryUpdate) (*domain.Category, error) {
	f.lastID = id
	f.lastUpdate = update
	return f.category, f.err
}

func (f *fakeCategoryUseCase) DeleteCategory(id int) error {
	f.lastID = id
	return f.err
}

func (f *fakeCategoryUseCase) ListCategories() ([]domain.Category, error) {
	return f.categories, f.err
}

func (f *fakeCategoryUseCase) GetProductsForCategory(id int) ([]domain.Product, error) {
	f.lastID = id
	return f.products, f.err
}

// fakeProductUseCase returns canned values per method.
type fakeProductUseCase struct {
	product  *domain.Product
	category *domain.Category
	page     *domain.ProductPage
	err      error

	lastID       int
	lastUpdate   domain.ProductUpdate
	lastPage     int
	lastPageSize int
	lastOrder    string
	lastSearch   string
	lastMin      float64
	lastMax      float64
}

func (f *fakeProductUseCase) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	product.ID = 1
	return product, nil
}

func (f *fakeProductUseCase) GetProductByID(id int) (*domain.Product, error) {
	f.lastID = id
	return f.product, f.err
}

func (f *fakeProductUseCase) UpdateProduct(id int, update domain.ProductUpdate) (*domain.Product, error) {
	f.lastID = id
	f.lastUpdate = update
	return f.product, f.err
}

func (f *fakeProductUseCase) DeleteProduct(id int) error {
	f.lastID = id
	return f.err
}

func (f *fakeProductUseCase) GetCategoryForProduct(productID int) (*domain.Category, error) {
	f.lastID = productID
	return f.category, f.err
}

func (f *fakeProductUseCase) ListProducts(page, pageSize int) (*domain.ProductPage, error) {
	f.lastPage, f.lastPageSize = page, pageSize
	return f.page, f.err
}

func (f *fakeProductUseCase) ListProductsByCategory(categoryID, page, pageSize int) (*domain.ProductPage, error) {
	f.lastID, f.lastPage, f.lastPageSize = categoryID, page, pageSize
	return f.page, f.err
}

func (f *fakeProductUseCase) ListProductsByPriceRange(min, max float64, page, pageSize int) (*domain.ProductPage, error) {
	f.lastMin, f.lastMax, f.lastPage, f.lastPageSize = min, max, page, pageSize
	return f.page, f.err
}

func (f *fakeProductUseCase) ListProductsSortedByPrice(order string, page, pageSize int) (*domain.ProductPage, error) {
	f.lastOrder, f.lastPage, f.lastPageSize = order, page, pageSize
	return f.page, f.err
}

func (f *fakeProductUseCase) SearchProductsByName(name string, page, pageSize int) (*domain.ProductPage, error) {
	f.lastSearch, f.lastPage, f.lastPageSize = name, page, pageSize
	return f.page, f.err
}

// fakeUserUseCase returns canned values per method.
type fakeUserUseCase struct {
	user  *domain.User
	token string
	err   error
}

func (f *fakeUserUseCase) RegisterUser(name, email, password, role string) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserUseCase) AuthenticateUser(email, password string) (string, error) {
	return f.token, f.err
}
