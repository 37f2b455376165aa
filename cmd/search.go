package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kc3lf/hamdrill/internal/bank"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the question bank from the command line",
	Long: `Search the question bank without entering the TUI.

Modes:
  keyword  match question text, number, chapter code, or option text
  chapter  match the chapter code only (substring, so 1.2 finds 1.2.x)
  id       match the internal classification code only

All modes ignore case and collapse easily confused characters
(l/I/1 and o/O/0), so "l0ve" finds "I0VE".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBank(cmd)
		if err != nil {
			return err
		}

		mode, _ := cmd.Flags().GetString("mode")
		var results []bank.Question
		switch mode {
		case "keyword":
			results = b.SearchKeyword(args[0])
		case "chapter":
			results = b.SearchChapter(args[0])
		case "id":
			results = b.SearchID(args[0])
		default:
			return fmt.Errorf("unknown mode %q (want keyword, chapter, or id)", mode)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			if results == nil {
				results = []bank.Question{}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}

		if len(results) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, q := range results {
			fmt.Println(formatQuestionLine(q))
		}
		fmt.Printf("%d question(s)\n", len(results))
		return nil
	},
}

func init() {
	searchCmd.Flags().String("mode", "keyword", "Search mode: keyword, chapter, or id")
	searchCmd.Flags().Bool("json", false, "Emit results as JSON")
}

// formatQuestionLine renders one search hit as a single line.
func formatQuestionLine(q bank.Question) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-10s", q.DisplayID)
	if q.ChapterID != "" {
		fmt.Fprintf(&sb, " %-8s", q.ChapterID)
	}
	if q.InternalID != "" {
		fmt.Fprintf(&sb, " %-8s", q.InternalID)
	}
	sb.WriteString(" ")
	sb.WriteString(q.Text)
	return sb.String()
}
