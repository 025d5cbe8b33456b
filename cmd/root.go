// Package cmd provides the root command and CLI setup for doccov.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"doccov.dev/pkg/doccov/internal/adapter"
	"doccov.dev/pkg/doccov/internal/controller"
	"doccov.dev/pkg/doccov/internal/domain"
)

var workflow domain.Workflow

// newWorkflow builds the workflow once flags and config are resolved.
var newWorkflow = buildWorkflow

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for directory commands.
var excludePatterns []string

var (
	policyFlag      string
	parallelFlag    int
	verboseFlag     bool
	metricsFileFlag string
)

const rootLongDescription = `doccov measures how much of a Swift code base carries documentation
comments. It finds type, function and property declarations, decides whether
each one is preceded by a /// comment, and reports coverage per file and per
directory along with suggested documentation for what is missing.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doccov",
		Short: "Documentation coverage for Swift sources",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger("", viper.GetBool(verboseConfigKey))

			if configErr != nil {
				slog.Error("Failed to load config", "error", configErr)
				return configErr
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&reportsOutputDirFlag, outputFlagName, "o", defaultReportsDir, "output directory for reports")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude files matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringVar(&policyFlag, policyFlagName, string(domain.PolicyBackward), "documentation association policy (backward or strict)")
	bindFlagToConfig(flags.Lookup(policyFlagName), associatorPolicyKey)

	flags.IntVarP(&parallelFlag, runParallelFlagName, "p", defaultRunParallel, "number of files audited in parallel")
	bindFlagToConfig(flags.Lookup(runParallelFlagName), runParallelConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), verboseConfigKey)

	flags.StringVar(&metricsFileFlag, metricsFlagName, "", "write Prometheus coverage metrics to this textfile after an audit")
	bindFlagToConfig(flags.Lookup(metricsFlagName), metricsConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// prepareWorkflow is the PreRunE of every command that reads sources or reports.
func prepareWorkflow(cmd *cobra.Command, _ []string) error {
	wf, err := newWorkflow(cmd)
	if err != nil {
		return err
	}

	workflow = wf

	return nil
}

func buildWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	scanner, err := domain.NewScanner(scanConfigFromViper())
	if err != nil {
		return nil, fmt.Errorf("scan configuration: %w", err)
	}

	associator, err := domain.NewAssociator(associationConfigFromViper())
	if err != nil {
		return nil, fmt.Errorf("associator configuration: %w", err)
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter(
		viper.GetStringSlice(projectMarkersKey),
		viper.GetString(projectNameKey),
	)

	tty := cmd.OutOrStdout() == os.Stdout && controller.IsTTY(os.Stdout)

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewReportStore(fsAdapter),
		adapter.NewTextfileExporter(),
		controller.NewUI(cmd, tty),
		domain.NewAnalyzer(scanner, associator),
		workflowConfigFromViper(),
	), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
