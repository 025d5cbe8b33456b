package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	analyzeOnlyFlag   bool
	analyzeFormatFlag string
	analyzeDiffFlag   bool
)

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Suggest documentation for a source file",
		Long: `Analyze a single source file and write documentation suggestions for every
undocumented declaration. With --analyze-only the coverage statistics are
printed instead and nothing is written.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: prepareWorkflow,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := m.Path(args[0])

			if analyzeOnlyFlag {
				if err := validateFormat(analyzeFormatFlag); err != nil {
					return err
				}

				stats, err := workflow.AnalyzeOnly(cmd.Context(), file)
				if err != nil {
					return err
				}

				return writeStats(cmd.OutOrStdout(), stats, analyzeFormatFlag)
			}

			_, err := workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{File: file, Diff: analyzeDiffFlag})

			return err
		},
	}

	cmd.Flags().BoolVar(&analyzeOnlyFlag, "analyze-only", false, "print coverage statistics without generating suggestions")
	cmd.Flags().StringVar(&analyzeFormatFlag, "format", formatJSON, "statistics format for --analyze-only (json or yaml)")
	cmd.Flags().BoolVar(&analyzeDiffFlag, "diff", false, "preview the file with suggestions applied as a unified diff")

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func validateFormat(format string) error {
	switch format {
	case formatJSON, formatYAML:
		return nil
	}

	return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatJSON, formatYAML)
}

func writeStats(w io.Writer, stats m.FileStats, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case formatYAML:
		data, err = yaml.Marshal(stats)
	default:
		data, err = json.MarshalIndent(stats, "", "  ")
		data = append(data, '\n')
	}

	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	_, err = w.Write(data)

	return err
}
