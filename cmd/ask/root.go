package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"legal-advisor-backend/config"
	"legal-advisor-backend/llm"
	"legal-advisor-backend/logging"
	"legal-advisor-backend/models"
	"legal-advisor-backend/service"

	"github.com/spf13/cobra"
)

type completerFactory func(cfg *config.Config) (llm.Completer, error)

func defaultCompleterFactory(cfg *config.Config) (llm.Completer, error) {
	return llm.NewFromConfig(cfg)
}

func newRootCommand(newCompleter completerFactory) *cobra.Command {
	var (
		configPath   string
		category     string
		jurisdiction string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question about Australian law",
		Long: `Ask a question about Australian law and print a structured analysis
followed by any legislation and case-law citations found in it.

This tool provides information only and is not legal advice.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			cat := models.Category(category)
			jur := models.Jurisdiction(jurisdiction)

			if err := service.ValidateQuery(query, cat, jur); err != nil {
				return describeValidationError(err)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel, "console")
			if err != nil {
				return err
			}
			defer logger.Sync()

			completer, err := newCompleter(cfg)
			if err != nil {
				return err
			}
			if closer, ok := completer.(io.Closer); ok {
				defer closer.Close()
			}

			queryService := service.NewQueryService(
				service.WithCompleter(completer),
				service.WithLogger(logger),
			)

			result, err := queryService.ProcessQuery(cmd.Context(), service.ProcessQueryRequest{
				Query:        query,
				Category:     cat,
				Jurisdiction: jur,
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result.AnalysisResponse)
			}
			writeAnalysis(cmd.OutOrStdout(), result.AnalysisResponse)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&category, "category", string(models.CategoryCriminal), "area of law")
	cmd.Flags().StringVar(&jurisdiction, "jurisdiction", string(models.JurisdictionFederal), "jurisdiction")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")

	return cmd
}

func describeValidationError(err error) error {
	switch err {
	case service.ErrInvalidCategory:
		return fmt.Errorf("%w; choose one of: %s", err, joinLabels(models.AllCategories()))
	case service.ErrInvalidJurisdiction:
		return fmt.Errorf("%w; choose one of: %s", err, joinLabels(models.AllJurisdictions()))
	default:
		return err
	}
}

func joinLabels[T ~string](labels []T) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%q", string(l))
	}
	return strings.Join(parts, ", ")
}

func writeAnalysis(w io.Writer, resp models.AnalysisResponse) {
	fmt.Fprintln(w, "### Analysis")
	fmt.Fprintln(w, resp.Answer)

	if len(resp.References) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "### References")
		for _, ref := range resp.References {
			fmt.Fprintf(w, "- %s\n", ref)
		}
	}
}
