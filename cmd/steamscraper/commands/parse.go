package commands

import (
	"io"
	"log/slog"
	"os"
	"steamscraper/internal/scrapers/storepage"
	"steamscraper/internal/storefront"

	"github.com/spf13/cobra"
)

var (
	parseLang   *string
	parseOutput *string
)

func init() {
	parseLang = parseCmd.Flags().String("lang", "", "The language the page was saved in. (default from config, english)")
	parseOutput = parseCmd.Flags().StringP("output", "o", "", "Write the JSON to this file instead of stdout.")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file.html | -> [--lang <lang>] [-o <file>]",
	Short: "Extracts the metadata of a store page saved locally, - reads stdin.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := storefront.ParseLanguage(orDefault(*parseLang, state.cfg.Defaults.Language))
		if err != nil {
			return err
		}

		var input io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			input = f
		}

		out, err := storepage.NewExtractor(state.tel).ParseStatic(input, lang)
		if err != nil {
			return err
		}
		if len(out) == 0 {
			slog.Info(noDataMessage)
			return nil
		}

		if *parseOutput != "" {
			err = writeRecordFile(*parseOutput, out)
			if err != nil {
				return err
			}
			slog.Info("data successfully saved", "path", *parseOutput)
			return nil
		}
		return writeRecord(cmd.OutOrStdout(), out)
	},
}
