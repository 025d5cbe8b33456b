package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const unknownVersion = "unknown"

// buildVersions returns the module and toolchain versions embedded in the binary.
func buildVersions() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion, unknownVersion
	}

	version := info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	return version, info.GoVersion
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the build version, the Go toolchain, and the scanning defaults in
effect (source language and documentation policy) after config is applied.`,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersions()

			cmd.Printf("doccov\t%s\n", version)
			cmd.Printf("go\t%s\n", goVersion)
			cmd.Printf("language\t%s\n", viper.GetString(languageConfigKey))
			cmd.Printf("policy\t%s\n", associationConfigFromViper().Policy)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
