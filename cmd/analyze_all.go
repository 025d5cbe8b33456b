package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

// analyzeAllCmd represents the analyze-all command.
var analyzeAllCmd = newAnalyzeAllCmd()

func newAnalyzeAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "analyze-all <directory>",
		Short:   "Suggest documentation for every source file in a directory",
		Args:    cobra.ExactArgs(1),
		PreRunE: prepareWorkflow,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.AnalyzeAll(cmd.Context(), domain.AnalyzeAllArgs{
				Dir:     m.Path(args[0]),
				Exclude: viper.GetStringSlice(excludeConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(analyzeAllCmd)
}
