package domain

type ProductRepository interface {
	CreateProduct(product *Product) (*Product, error)
	GetProductByID(id int) (*Product, error)
	UpdateProduct(id int, update ProductUpdate) (*Product, error)
	DeleteProduct(id int) error
	GetProductCategory(productID int) (*Category, error)

	ListProducts(page, pageSize int) (*ProductPage, error)
	ListProductsByCategory(categoryID, page, pageSize int) (*ProductPage, error)
	ListProductsByPriceRange(min, max float64, page, pageSize int) (*ProductPage, error)
	ListProductsSortedByPrice(order string, page, pageSize int) (*ProductPage, error)
	SearchProductsByName(name string, page, pageSize int) (*ProductPage, error)
}
