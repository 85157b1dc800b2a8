package cli

import (
	"atelier_backend/internal/app"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample portfolio and the first admin account",
	Long: `Insert the sample dresses when the portfolio is empty, and create the
admin account named by FIRST_ADMIN_USERNAME / FIRST_ADMIN_PASSWORD if set.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Seed.Portfolio = true
	cfg.Email.Enabled = false

	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Seed(cmd.Context())
}
