// Package bootstrap seeds data the API needs before it can be used.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"librarymgmt/internal/config"
	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/service"
)

// InitAdministrator creates the configured administrator outside production.
// An existing account with the same email is left untouched.
func InitAdministrator(ctx context.Context, admins service.AdminService, cfg *config.Config, logger *slog.Logger) error {
	if cfg.IsProduction() {
		logger.Debug("Skipping administrator bootstrap in production")
		return nil
	}

	admin, err := admins.CreateAdmin(ctx, dto.AdminCreateRequest{
		Email:    cfg.BootstrapAdminEmail,
		Name:     cfg.BootstrapAdminName,
		Password: cfg.BootstrapAdminPassword,
	})
	if errors.Is(err, service.ErrDuplicate) {
		logger.Warn("Bootstrap administrator already exists", "email", cfg.BootstrapAdminEmail)
		return nil
	}
	if err != nil {
		return fmt.Errorf("bootstrap administrator: %w", err)
	}

	logger.Info("Bootstrap administrator created", "id", admin.ID, "email", admin.Email)
	return nil
}
