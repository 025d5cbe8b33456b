package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

// auditCmd represents the audit command.
var auditCmd = newAuditCmd()

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit <path>",
		Short: "Measure documentation coverage of a file or directory",
		Long: `Audit a source file or every source file under a directory. Per-file
reports and a directory summary are written under the output directory.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: prepareWorkflow,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Audit(cmd.Context(), auditArgs(m.Path(args[0])))
			return err
		},
	}
}

func auditArgs(path m.Path) domain.AuditArgs {
	return domain.AuditArgs{
		Path:    path,
		Exclude: viper.GetStringSlice(excludeConfigKey),
		Threads: viper.GetInt(runParallelConfigKey),
	}
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
