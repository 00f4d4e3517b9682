package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/domain"
	"github.com/labtrack/labtrack/internal/logger"
)

// User service errors
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	ErrSignupDisabled     = fmt.Errorf("%w: sign up is disabled", domain.ErrForbidden)
)

// SignUpInput carries the fields of a new account
type SignUpInput struct {
	Email    string
	Password string
	Name     *string
	MemberID *uint
}

// AuthPayload is returned by SignUp and Login
type AuthPayload struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// User provides business logic for user operations
type User struct {
	store       *repos.Store
	issuer      *auth.Issuer
	allowSignup bool
}

// NewUserService creates a new user service instance
func NewUserService(store *repos.Store, issuer *auth.Issuer, allowSignup bool) *User {
	return &User{store: store, issuer: issuer, allowSignup: allowSignup}
}

// SignUp creates an account and logs it in. The first account becomes an admin;
// later accounts need sign up to be enabled.
func (s *User) SignUp(ctx context.Context, in SignUpInput) (*AuthPayload, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	err := validate(validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.Password, validation.Required, validation.Length(auth.MinPasswordLength, 72)),
	))
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: in.Email, Role: models.UserRoleMember, MemberID: in.MemberID}
	setText(&user.Name, in.Name)
	err = s.store.Transaction(ctx, func(tx *repos.Store) error {
		count, err := tx.Users.Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			user.Role = models.UserRoleAdmin
		} else if !s.allowSignup {
			return ErrSignupDisabled
		}
		return s.create(ctx, tx, user, in.Password)
	})
	if err != nil {
		return nil, err
	}
	logger.InfoWithFields("user signed up", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return s.payload(user)
}

// Login verifies credentials and issues a token
func (s *User) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	user, err := s.store.Users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		logger.WarnWithFields("failed login", map[string]interface{}{"user_id": user.ID})
		return nil, ErrInvalidCredentials
	}
	return s.payload(user)
}

// EnsureAdmin creates an admin account for email unless a user already has it
func (s *User) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	taken, err := s.store.Users.EmailTaken(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return nil
	}
	user := &models.User{Email: email, Role: models.UserRoleAdmin}
	if err := s.create(ctx, s.store, user, password); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	logger.InfoWithFields("admin user created", map[string]interface{}{"user_id": user.ID})
	return nil
}

func (s *User) create(ctx context.Context, tx *repos.Store, user *models.User, password string) error {
	taken, err := tx.Users.EmailTaken(ctx, user.Email)
	if err != nil {
		return err
	}
	if taken {
		return domain.Conflict("user", "email", user.Email)
	}
	if err := tx.Members.RequireIDs(ctx, optional(user.MemberID)...); err != nil {
		return err
	}
	if user.PasswordHash, err = auth.HashPassword(password); err != nil {
		return err
	}
	return tx.Users.Create(ctx, user)
}

func (s *User) payload(user *models.User) (*AuthPayload, error) {
	token, expires, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthPayload{Token: token, ExpiresAt: expires, User: user}, nil
}

// Me resolves the user behind an identity. External identities are matched by email.
func (s *User) Me(ctx context.Context, id *auth.Identity) (*models.User, error) {
	if id == nil {
		return nil, domain.ErrUnauthorized
	}
	if id.UserID != 0 {
		return s.store.Users.Get(ctx, id.UserID)
	}
	if id.Email == "" {
		return nil, domain.NotFound("user", 0)
	}
	return s.store.Users.GetByEmail(ctx, id.Email)
}

// Get retrieves a user by ID
func (s *User) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.store.Users.Get(ctx, id)
}

// List retrieves users
func (s *User) List(ctx context.Context, opts *models.ListOptions) ([]models.User, error) {
	return s.store.Users.List(ctx, opts)
}

// Delete deletes a user
func (s *User) Delete(ctx context.Context, id uint) error {
	if err := s.store.Users.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoWithFields("user deleted", map[string]interface{}{"user_id": id})
	return nil
}
