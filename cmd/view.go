package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "view",
		Short:   "View previously generated audit results",
		Long:    "View the coverage of every file audited into the reports directory.",
		Args:    cobra.ExactArgs(0),
		PreRunE: prepareWorkflow,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
