package cmd

import (
	"github.com/spf13/cobra"

	m "doccov.dev/pkg/doccov/internal/model"
)

// auditFileCmd represents the audit-file command.
var auditFileCmd = newAuditFileCmd()

func newAuditFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "audit-file <file>",
		Short:   "Write the audit report of a single source file",
		Args:    cobra.ExactArgs(1),
		PreRunE: prepareWorkflow,
		RunE: func(cmd *cobra.Command, args []string) error {
			audit, err := workflow.AuditFile(cmd.Context(), m.Path(args[0]))
			if err != nil {
				return err
			}

			cmd.Printf("%s: %.2f%% (%d/%d documented)\n", audit.RelPath,
				audit.Stats.CoveragePercentage, audit.Stats.DocumentedItems, audit.Stats.TotalItems)
			cmd.Printf("Report saved to %s\n", audit.ReportPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(auditFileCmd)
}
