package cmd

import (
	"github.com/spf13/cobra"

	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

var (
	workflowFileFlag       string
	workflowAnalyzeAllFlag bool
)

// workflowCmd represents the workflow command.
var workflowCmd = newWorkflowCmd()

func newWorkflowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow <directory>",
		Short: "Audit a directory, list priorities and generate suggestions",
		Long: `Run the complete documentation workflow: audit the directory, list the files
with no or low coverage, then generate suggestions for one file (--file) or
for every file (--analyze-all).`,
		Args:    cobra.ExactArgs(1),
		PreRunE: prepareWorkflow,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				AuditArgs:  auditArgs(m.Path(args[0])),
				File:       m.Path(workflowFileFlag),
				AnalyzeAll: workflowAnalyzeAllFlag,
			})
		},
	}

	cmd.Flags().StringVar(&workflowFileFlag, "file", "", "generate suggestions for this file after the audit")
	cmd.Flags().BoolVar(&workflowAnalyzeAllFlag, "analyze-all", false, "generate suggestions for every file after the audit")
	cmd.MarkFlagsMutuallyExclusive("file", "analyze-all")

	return cmd
}

func init() {
	rootCmd.AddCommand(workflowCmd)
}
