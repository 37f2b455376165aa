package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kc3lf/hamdrill/internal/app"
	"github.com/kc3lf/hamdrill/internal/bank"
)

var rootCmd = &cobra.Command{
	Use:   "hamdrill",
	Short: "Amateur radio exam trainer",
	Long:  "Hamdrill — terminal trainer for amateur radio license exams: sequential drill, mock exams, and fuzzy question search over [J]-tagged bank files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBank(cmd)
		if err != nil {
			return err
		}
		if n := len(b.Diagnostics); n > 0 {
			fmt.Fprintf(os.Stderr, "warning: %d record(s) had problems, run `hamdrill check` for details\n", n)
		}
		return app.Run(b)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank file (overrides HAMDRILL_BANK env var)")
	rootCmd.PersistentFlags().String("media", "", "Path to the figure directory (overrides HAMDRILL_MEDIA env var and photo/ inference)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBankPath returns the bank file path using --bank (highest
// priority), then the HAMDRILL_BANK env var.
func resolveBankPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p, nil
	}
	if p := os.Getenv("HAMDRILL_BANK"); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no question bank: pass --bank or set HAMDRILL_BANK")
}

// resolveMediaDir returns the figure directory override using --media,
// then the HAMDRILL_MEDIA env var. Empty means infer from the bank path.
func resolveMediaDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("media"); p != "" {
		return p
	}
	return os.Getenv("HAMDRILL_MEDIA")
}

// loadBank loads the configured bank file for any subcommand.
func loadBank(cmd *cobra.Command) (*bank.Bank, error) {
	path, err := resolveBankPath(cmd)
	if err != nil {
		return nil, err
	}

	b, err := bank.Load(path, bank.LoadOptions{MediaDir: resolveMediaDir(cmd)})
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	return b, nil
}
