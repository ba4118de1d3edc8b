package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/repository"
)

type AuthService struct {
	repo       repository.PostgresRepository
	tokens     TokenIssuer
	bcryptCost int
}

func NewAuthService(repo repository.PostgresRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// SetBcryptCost lowers hashing cost in tests.
func (s *AuthService) SetBcryptCost(cost int) {
	s.bcryptCost = cost
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	role := domain.Role(req.Role)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.repo.Account().FindByEmailOrPhone(ctx, role, email, req.Phone)
	switch {
	case err == nil:
		return nil, ErrAccountExists
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}
	if err := s.repo.Account().Create(ctx, role, account); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, ErrAccountExists
		}
		return nil, err
	}

	return s.issue(account, role)
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	role := domain.Role(req.Role)
	identifier := strings.TrimSpace(req.Identifier)

	account, err := s.repo.Account().FindByEmailOrPhone(ctx, role, strings.ToLower(identifier), identifier)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(account, role)
}

func (s *AuthService) Me(ctx context.Context, role domain.Role, id string) (*dto.AccountResponse, error) {
	account, err := s.repo.Account().GetByID(ctx, role, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromAccount(account, role)
	return &resp, nil
}

// Delete removes an account. Deleting an owner also deletes their properties along with
// the requests attached to them.
func (s *AuthService) Delete(ctx context.Context, role domain.Role, id string) error {
	return s.repo.WithTx(ctx, func(tx repository.PostgresRepository) error {
		if role == domain.RoleOwner {
			properties, err := tx.Property().List(ctx, domain.PropertyFilter{OwnerID: id})
			if err != nil {
				return err
			}
			for _, p := range properties {
				if _, err := tx.Request().DeleteByProperty(ctx, p.ID); err != nil {
					return err
				}
				if _, err := tx.PaymentRequest().DeleteByProperty(ctx, p.ID); err != nil {
					return err
				}
			}
			if _, err := tx.Property().DeleteByOwner(ctx, id); err != nil {
				return err
			}
		}
		return tx.Account().Delete(ctx, role, id)
	})
}

func (s *AuthService) issue(account *domain.Account, role domain.Role) (*dto.TokenResponse, error) {
	token, expiresAt, err := s.tokens.GenerateToken(account.ID, account.Name, []string{string(role)})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &dto.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   dto.FromAccount(account, role),
	}, nil
}
