package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"catalog_service/internal/auth"
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	RegisterUser(name, email, password, role string) (*domain.User, error)
	AuthenticateUser(email, password string) (string, error)
}

type userUseCase struct {
	userRepo  domain.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       *logrus.Logger
}

func NewUserUseCase(repo domain.UserRepository, jwtSecret string, tokenTTL time.Duration, logger *logrus.Logger) UserUseCase {
	return &userUseCase{
		userRepo:  repo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       logger,
	}
}

// RegisterUser validates the input, hashes the password and stores the
// account. Registration only creates "user" accounts; admin accounts
// are provisioned by an operator updating the role column directly.
func (uc *userUseCase) RegisterUser(name, email, password, role string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		uc.log.Warn("Use Case: Registration failed - empty name")
		return nil, fmt.Errorf("user name cannot be empty: %w", domain.ErrValidation)
	}
	if !isValidEmail(email) {
		uc.log.Warnf("Use Case: Registration failed - invalid email format: %s", email)
		return nil, fmt.Errorf("invalid email format: %w", domain.ErrValidation)
	}
	if err := validatePassword(password); err != nil {
		uc.log.Warnf("Use Case: Registration failed - password validation error: %v", err)
		return nil, err
	}

	switch role {
	case "", domain.RoleUser:
		role = domain.RoleUser
	default:
		uc.log.Warnf("Use Case: Registration rejected role: %s", role)
		return nil, fmt.Errorf("accounts cannot self-assign role %q: %w", role, domain.ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for %s: %v", email, err)
		return nil, fmt.Errorf("internal error processing password: %w", err)
	}

	newUser := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	createdUser, err := uc.userRepo.CreateUser(newUser)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create user %s: %v", email, err)
		return nil, err
	}

	uc.log.Infof("Use Case: User registered successfully. ID: %d, Email: %s", createdUser.ID, createdUser.Email)
	return createdUser, nil
}

// AuthenticateUser verifies the credentials and issues a signed session
// token. Wrong email and wrong password are indistinguishable to the
// caller.
func (uc *userUseCase) AuthenticateUser(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !isValidEmail(email) || password == "" {
		uc.log.Warnf("Use Case: Auth failed - invalid email or empty password for %s", email)
		return "", fmt.Errorf("invalid email or password: %w", domain.ErrInvalidCredentials)
	}

	user, err := uc.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Auth failed - user not found: %s", email)
			return "", fmt.Errorf("invalid email or password: %w", domain.ErrInvalidCredentials)
		}
		uc.log.Errorf("Use Case: Error retrieving user %s during auth: %v", email, err)
		return "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Auth failed - incorrect password for user %s (ID: %d)", email, user.ID)
			return "", fmt.Errorf("invalid email or password: %w", domain.ErrInvalidCredentials)
		}
		uc.log.Errorf("Use Case: Error comparing password hash for user %s: %v", email, err)
		return "", fmt.Errorf("internal error during authentication: %w", err)
	}

	token, err := auth.NewToken(uc.jwtSecret, uc.tokenTTL, user)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to issue token for user %s: %v", email, err)
		return "", fmt.Errorf("could not issue token: %w", err)
	}

	uc.log.Infof("Use Case: Authentication successful for user %s (ID: %d)", email, user.ID)
	return token, nil
}

// isValidEmail provides a basic check for email format.
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	domainParts := strings.Split(parts[1], ".")
	return len(domainParts) >= 2 && domainParts[0] != "" && domainParts[len(domainParts)-1] != ""
}

// validatePassword enforces basic password complexity rules.
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long: %w", domain.ErrValidation)
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must contain upper and lower case letters and a digit: %w", domain.ErrValidation)
	}
	return nil
}
