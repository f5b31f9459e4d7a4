package commands

import (
	"steamscraper/internal/storefront"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(languagesCmd)
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Lists the language codes accepted by --lang.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Code", "Language"})
		for _, lang := range storefront.Languages() {
			t.AppendRow(table.Row{lang, lang.DisplayName()})
		}
		t.Render()
	},
}
