package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse the question bank and report problems",
	Long:  "Parse the configured bank file and list every skipped record and unresolved figure. The bank itself still loads as long as at least one valid question remains.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBank(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d question(s)\n", filepath.Base(b.Path), len(b.Questions))
		if b.MediaDir != "" {
			withFigures := 0
			for _, q := range b.Questions {
				if q.ImagePath != "" {
					withFigures++
				}
			}
			fmt.Printf("media directory %s, %d question(s) with figures\n", b.MediaDir, withFigures)
		}

		if len(b.Diagnostics) == 0 {
			fmt.Println("no problems found")
			return nil
		}

		fmt.Printf("%d problem(s):\n", len(b.Diagnostics))
		for _, d := range b.Diagnostics {
			fmt.Printf("  %s\n", d)
		}
		return nil
	},
}
