package user

import (
	"fmt"
	"strings"
	"time"

	userRepo "roomify/database/repository/user"
	"roomify/models"
	"roomify/services/booking"
	"roomify/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Typed account errors, surfaced to the transport layer by code.
var (
	ErrEmailTaken         = &booking.Error{Code: "emailTaken", Message: "an account with this email already exists"}
	ErrInvalidCredentials = &booking.Error{Code: "invalidCredentials", Message: "invalid email or password"}
	ErrWeakPassword       = &booking.Error{Code: "weakPassword", Message: "password must be at least 8 characters"}
)

const tokenTTL = 24 * time.Hour

// RegisterInput carries a new account registration.
type RegisterInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService manages accounts and credentials.
type UserService interface {
	// Register creates an account with a bcrypt-hashed password and returns a
	// signed session token.
	Register(in RegisterInput) (*AuthResult, error)
	// Authenticate verifies credentials and returns a signed session token.
	Authenticate(email, password string) (*AuthResult, error)

	// GetUser retrieves a user by ID.
	GetUser(userID string) (*models.User, error)
	// ListUsers retrieves all users.
	ListUsers() ([]models.User, error)
	// UpdateUser applies profile edits. Role changes require an administrator.
	UpdateUser(userID string, in UpdateInput, actor booking.Actor) (*models.User, error)
	// DeleteUser removes an account.
	DeleteUser(userID string) error
}

// UpdateInput carries profile edits; nil fields are left unchanged.
type UpdateInput struct {
	FirstName    *string      `json:"firstName"`
	LastName     *string      `json:"lastName"`
	ContactPhone *string      `json:"contactPhone"`
	Address      *string      `json:"address"`
	Password     *string      `json:"password"`
	Role         *models.Role `json:"role"`
}

// DefaultUserService is the standard implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account. Emails are unique and stored lowercased.
func (s *DefaultUserService) Register(in RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidCredentials
	}
	if len(in.Password) < 8 {
		return nil, ErrWeakPassword
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		Address:      strings.TrimSpace(in.Address),
		Role:         models.RoleUser,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return s.issueToken(u)
}

// Authenticate verifies credentials against the stored bcrypt hash.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(u)
}

func (s *DefaultUserService) issueToken(u *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{Token: token, User: u}, nil
}

// GetUser retrieves a user by ID.
func (s *DefaultUserService) GetUser(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, booking.ErrNotFound
	}
	return u, nil
}

// ListUsers retrieves all users.
func (s *DefaultUserService) ListUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// UpdateUser applies profile edits. Non-admins may only edit their own
// profile and never their role.
func (s *DefaultUserService) UpdateUser(userID string, in UpdateInput, actor booking.Actor) (*models.User, error) {
	if !actor.Admin && actor.UserID != userID {
		return nil, booking.ErrForbidden
	}

	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, booking.ErrNotFound
	}

	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.ContactPhone != nil {
		u.ContactPhone = strings.TrimSpace(*in.ContactPhone)
	}
	if in.Address != nil {
		u.Address = strings.TrimSpace(*in.Address)
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if in.Role != nil {
		if !actor.Admin {
			return nil, booking.ErrForbidden
		}
		if *in.Role != models.RoleUser && *in.Role != models.RoleAdmin {
			return nil, booking.ErrInvalidTransition
		}
		u.Role = *in.Role
	}

	u.UpdatedAt = time.Now()
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return booking.ErrNotFound
	}
	return s.Repo.Delete(userID)
}
