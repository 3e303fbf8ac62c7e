package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"librarymgmt/database"
	"librarymgmt/internal/config"
	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/repository"
	"librarymgmt/internal/http-api/service"
	"librarymgmt/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	email    string
	name     string
	password string
)

var rootCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a library administrator account",
	Long: `create-admin registers an administrator directly in the library database.
Connection settings are read from the same environment (or .env file) as the API server.
The password is prompted for when --password is not given.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&email, "email", "e", "", "administrator email (required)")
	rootCmd.Flags().StringVarP(&name, "name", "n", "", "display name (defaults to the email's local part)")
	rootCmd.Flags().StringVarP(&password, "password", "p", "", "password; prompted for when empty")
	_ = rootCmd.MarkFlagRequired("email")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("create-admin: %v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg)

	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	if password == "" {
		if password, err = readPassword(); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}
	if len(password) < 4 {
		return errors.New("password must be at least 4 characters long")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.DBConnectTimeout*2)
	defer cancel()

	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	admins := service.NewAdminService(repository.NewAdminRepository(db.Gorm), service.NewTokenManager(cfg))
	admin, err := admins.CreateAdmin(ctx, dto.AdminCreateRequest{Email: email, Name: name, Password: password})
	if err != nil {
		return err
	}

	color.Green("Created administrator %s (id %d)", admin.Email, admin.ID)
	return nil
}

// readPassword prompts twice with echo disabled.
func readPassword() (string, error) {
	fmt.Print("Password: ")
	first, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}

	fmt.Print("Confirm password: ")
	second, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return strings.TrimSpace(string(first)), nil
}
