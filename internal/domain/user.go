package domain

type UserRepository interface {
	CreateUser(user *User) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUserByID(id int64) (*User, error)
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
