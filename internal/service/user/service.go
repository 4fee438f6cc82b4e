package user

import (
	"context"
	"errors"

	"bookstore/internal/auth"
	"bookstore/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	repo   userRepo
	carts  cartCreator
	tokens *auth.Manager
}

type userRepo interface {
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type cartCreator interface {
	CreateForUser(ctx context.Context, userID string) error
}

func New(repo userRepo, carts cartCreator, tokens *auth.Manager) *Service {
	return &Service{repo: repo, carts: carts, tokens: tokens}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates the user with role USER and an empty cart. A duplicate
// email surfaces as domain.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         domain.RoleUser,
	})
	if err != nil {
		return nil, err
	}
	if err := s.carts.CreateForUser(ctx, created.ID); err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies the credentials and issues a signed token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
