package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccov.dev/pkg/doccov/internal/domain"
)

// useWorkflow makes commands run against wf instead of the real workflow.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := newWorkflow
	newWorkflow = func(*cobra.Command) (domain.Workflow, error) { return wf, nil }

	t.Cleanup(func() { newWorkflow = original })
}

func testRootCmd(t *testing.T, sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	t.Setenv("DOCCOV_LOG_FILENAME", filepath.Join(t.TempDir(), "doccov.log"))

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(sub...)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "doccov", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{outputFlagName, excludeFlagName, policyFlagName, runParallelFlagName, verboseFlagName, metricsFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd, out := testRootCmd(t)

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "documentation")
}

func TestInit(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"analyze", "audit", "audit-file", "analyze-all", "workflow", "view", "init", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestPrepareWorkflow_BuildsFromConfig(t *testing.T) {
	cmd, _ := testRootCmd(t)

	require.NoError(t, prepareWorkflow(cmd, nil))
	assert.NotNil(t, workflow)
}

func TestPrepareWorkflow_RejectsUnknownPolicy(t *testing.T) {
	cmd, _ := testRootCmd(t, newAuditCmd())

	cmd.SetArgs([]string{"audit", ".", "--policy", "nearest"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nearest")
}

func TestPrepareWorkflow_PropagatesFactoryError(t *testing.T) {
	cmd, _ := testRootCmd(t, newViewCmd())

	original := newWorkflow
	newWorkflow = func(*cobra.Command) (domain.Workflow, error) { return nil, errors.New("no workflow") }
	defer func() { newWorkflow = original }()

	cmd.SetArgs([]string{"view"})
	require.EqualError(t, cmd.Execute(), "no workflow")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(*cobra.Command, []string) error {
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "output: %s", output)
	assert.Equal(t, 1, exitErr.ExitCode())
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(*cobra.Command, []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}
