// Package services holds the user authority's business logic: account
// creation and editing, signup, login and session lookup. Every mutation
// of the directory returns the full replacement list.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/dmitrijs2005/userconsole/internal/server/auth"
	"github.com/dmitrijs2005/userconsole/internal/server/config"
	"github.com/dmitrijs2005/userconsole/internal/server/models"
	"github.com/dmitrijs2005/userconsole/internal/server/passwords"
	"github.com/dmitrijs2005/userconsole/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userconsole/internal/server/repositories/users"
)

// NewUser is an account to be created by an administrator.
type NewUser struct {
	Name     string
	Email    string
	Password string
	DOB      string
	Phone    string
}

// UserPatch replaces the editable fields of an account.
type UserPatch struct {
	Name  string
	Email string
	DOB   string
	Phone string
}

type UserService struct {
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	sessionTTL  time.Duration
	newID       func() string
	now         func() time.Time
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		sessionTTL:  cfg.SessionTTL,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// SessionTTL is how long tokens issued by Login stay valid.
func (s *UserService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	list, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return list, nil
}

func (s *UserService) Create(ctx context.Context, in NewUser) (*models.User, error) {
	user, err := s.newAccount(in.Name, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if user.DOB, err = parseDOB(in.DOB); err != nil {
		return nil, err
	}
	user.Phone = strings.TrimSpace(in.Phone)

	user, err = s.repomanager.Users().Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Signup registers an account with just a name, email and password.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	user, err := s.newAccount(name, email, password)
	if err != nil {
		return nil, err
	}

	user, err = s.repomanager.Users().Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error signing up: %w", err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, patch UserPatch) ([]models.User, error) {
	name, email, err := nameAndEmail(patch.Name, patch.Email)
	if err != nil {
		return nil, err
	}
	dob, err := parseDOB(patch.DOB)
	if err != nil {
		return nil, err
	}

	var list []models.User
	err = s.repomanager.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		user := &models.User{ID: id, Name: name, Email: email, DOB: dob, Phone: strings.TrimSpace(patch.Phone)}
		if err := repo.Update(ctx, user); err != nil {
			return err
		}
		list, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return list, nil
}

func (s *UserService) Delete(ctx context.Context, id string) ([]models.User, error) {
	var list []models.User
	err := s.repomanager.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		var err error
		list, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error deleting user: %w", err)
	}
	return list, nil
}

// Login checks the credentials and returns a signed session token.
// Unknown accounts and wrong passwords both yield common.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repomanager.Users().GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}

	if err := passwords.Compare(user.PasswordHash, password); err != nil {
		return "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(identity(user), s.jwtSecret, s.sessionTTL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInternal, err)
	}
	return token, nil
}

// Session resolves a token to the account it was issued to. The account
// must still exist; its current name and email are reported.
func (s *UserService) Session(ctx context.Context, token string) (auth.Identity, error) {
	id, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}

	user, err := s.repomanager.Users().GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return auth.Identity{}, common.ErrUnauthorized
		}
		return auth.Identity{}, fmt.Errorf("error loading user: %w", err)
	}
	return identity(user), nil
}

func (s *UserService) newAccount(name, email, password string) (*models.User, error) {
	name, email, err := nameAndEmail(name, email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	return &models.User{
		ID:           s.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}, nil
}

func nameAndEmail(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return "", "", fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if at := strings.LastIndex(email, "@"); at < 1 || at == len(email)-1 {
		return "", "", common.ErrInvalidEmail
	}
	return name, email, nil
}

// parseDOB accepts an empty string as "not set".
func parseDOB(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return nil, common.ErrInvalidDOB
	}
	return &t, nil
}

func identity(u *models.User) auth.Identity {
	return auth.Identity{UserID: u.ID, Name: u.Name, Email: u.Email}
}
