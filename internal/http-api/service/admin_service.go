package service

import (
	"context"
	"errors"
	"fmt"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
	"librarymgmt/internal/http-api/repository"
	"librarymgmt/internal/middleware/auth"

	"gorm.io/gorm"
)

type AdminService interface {
	CreateAdmin(ctx context.Context, req dto.AdminCreateRequest) (*dto.AdminResponse, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
}

type adminService struct {
	adminRepo repository.AdminRepository
	tokens    *TokenManager
}

func NewAdminService(adminRepo repository.AdminRepository, tokens *TokenManager) AdminService {
	return &adminService{adminRepo: adminRepo, tokens: tokens}
}

// CreateAdmin registers an administrator. An email already in use yields ErrDuplicate.
func (s *adminService) CreateAdmin(ctx context.Context, req dto.AdminCreateRequest) (*dto.AdminResponse, error) {
	if _, err := s.adminRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("administrator %s: %w", req.Email, ErrDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &models.Administrator{
		Email:    req.Email,
		Name:     req.Name,
		Password: hashed,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		// lost a race with a concurrent insert of the same email
		return nil, translate(err, "administrator "+req.Email)
	}

	return dto.FromAdministrator(admin), nil
}

func (s *adminService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		auth.BurnPassword(password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := auth.VerifyPassword(admin.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokens.Issue(admin.Email, models.RoleAdmin)
}
