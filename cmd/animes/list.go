package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/animes/pkg/services"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked anime",
	Long:  "Display every tracked anime ordered by weekday in a formatted table",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openSession(false)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(s.controller.GetAnimes())
		}

		animes := services.SortAnimes(s.controller.GetAnimes())
		if len(animes) == 0 {
			fmt.Fprintln(out, "📺 Nothing tracked yet. Use 'animes add <day> <title>' to add a show.")
			return nil
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("Day", "Title", "Episodes", "ID")

		for _, a := range animes {
			t.Row(truncateString(a.Day, 16), truncateString(a.Title, 48), fmt.Sprintf("%d", a.Episodes), a.ID)
		}

		fmt.Fprintf(out, "\n📺 Tracking %d anime\n\n", len(animes))
		fmt.Fprintln(out, t)
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("json", false, "print the collection as JSON keyed by id")

	rootCmd.AddCommand(listCmd)
}
