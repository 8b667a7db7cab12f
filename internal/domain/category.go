package domain

type CategoryRepository interface {
	CreateCategory(category *Category) (*Category, error)
	GetCategoryByID(id int) (*Category, error)
	UpdateCategory(id int, update CategoryUpdate) (*Category, error)
	DeleteCategory(id int) error
	ListCategories() ([]Category, error)
	ListCategoryProducts(id int) ([]Product, error)
}
