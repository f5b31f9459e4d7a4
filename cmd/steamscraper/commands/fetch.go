package commands

import (
	"errors"
	"log/slog"
	"path/filepath"
	"steamscraper/internal/components/fetch"
	"steamscraper/internal/record"
	"steamscraper/internal/scrapers"
	"steamscraper/internal/scrapers/combined"
	"steamscraper/internal/storefront"

	"github.com/spf13/cobra"
)

var (
	fetchSource     *string
	fetchLang       *string
	fetchOutput     *string
	fetchAutoName   *bool
	fetchConcurrent *bool
	fetchSummary    *bool
)

func init() {
	fetchSource = fetchCmd.Flags().String("source", "", "The data source, one of store-html, steampowered-api or combined. (default from config, store-html)")
	fetchLang = fetchCmd.Flags().String("lang", "", "The language to retrieve the data in. (default from config, english)")
	fetchOutput = fetchCmd.Flags().StringP("output", "o", "", "Write the JSON to this file instead of stdout, with --auto-name it is the directory.")
	fetchAutoName = fetchCmd.Flags().Bool("auto-name", false, "Name the output file after the product.")
	fetchConcurrent = fetchCmd.Flags().Bool("concurrent", false, "Fetch both sources of the combined source at the same time.")
	fetchSummary = fetchCmd.Flags().Bool("summary", false, "Print a table of the retrieved fields instead of JSON.")
	rootCmd.AddCommand(fetchCmd)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <app id | store url> [--source <source>] [--lang <lang>] [-o <file>]",
	Short: "Retrieves the metadata of a product.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := args[0]
		cfg := state.cfg

		lang, err := storefront.ParseLanguage(orDefault(*fetchLang, cfg.Defaults.Language))
		if err != nil {
			return err
		}
		mode, err := scrapers.ParseMode(orDefault(*fetchSource, cfg.Defaults.Source))
		if err != nil {
			return err
		}
		_, err = storefront.Resolve(identifier)
		if err != nil {
			return err
		}

		client, err := fetch.NewClient(cfg.FetchOptions(), state.tel)
		if err != nil {
			return err
		}
		sources := scrapers.NewSources(client, combined.Options{
			Concurrent: *fetchConcurrent || cfg.Defaults.Concurrent,
		}, state.tel)
		source, err := sources.Get(mode)
		if err != nil {
			return err
		}

		slog.Info("retrieving", "identifier", identifier, "source", mode, "lang", lang)
		out, err := source.Get(cmd.Context(), identifier, lang)
		if errors.Is(err, record.ErrNoData) || (err == nil && len(out) == 0) {
			slog.Info(noDataMessage)
			return nil
		}
		if err != nil {
			return err
		}

		output := *fetchOutput
		if *fetchAutoName {
			name, err := autoName(identifier, lang)
			if err != nil {
				return err
			}
			output = filepath.Join(output, name)
		}

		if *fetchSummary {
			renderSummary(cmd.OutOrStdout(), out)
		}
		if output != "" {
			err = writeRecordFile(output, out)
			if err != nil {
				return err
			}
			slog.Info("data successfully saved", "path", output)
			return nil
		}
		if *fetchSummary {
			return nil
		}
		return writeRecord(cmd.OutOrStdout(), out)
	},
}
