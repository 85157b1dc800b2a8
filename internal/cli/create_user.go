package cli

import (
	"errors"
	"fmt"
	"os"

	"atelier_backend/internal/config"
	"atelier_backend/internal/database"
	"atelier_backend/internal/logger"
	"atelier_backend/internal/services"

	"github.com/spf13/cobra"
)

var (
	newUsername string
	newPassword string
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a studio admin account",
	Long: `Create an admin account in the configured database. The password can be
given with --password or through the ATELIER_ADMIN_PASSWORD environment variable.`,
	RunE: runCreateUser,
}

func init() {
	rootCmd.AddCommand(createUserCmd)

	createUserCmd.Flags().StringVar(&newUsername, "username", "", "Account username")
	createUserCmd.Flags().StringVar(&newPassword, "password", "", "Account password (at least 8 characters)")
	_ = createUserCmd.MarkFlagRequired("username")
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("Memory storage is not persistent, the account disappears when this command exits")
	}

	password := newPassword
	if password == "" {
		password = os.Getenv("ATELIER_ADMIN_PASSWORD")
	}
	if password == "" {
		return errors.New("a password is required: pass --password or set ATELIER_ADMIN_PASSWORD")
	}

	repo, err := database.OpenRepository(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	user, err := services.NewUserService(repo).Register(cmd.Context(), newUsername, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created user %q (id %d)\n", user.Username, user.ID)
	return nil
}
