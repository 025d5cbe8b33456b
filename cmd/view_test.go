package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doccov.dev/pkg/doccov/internal/domain"
	domainmocks "doccov.dev/pkg/doccov/internal/domain/mocks"
	m "doccov.dev/pkg/doccov/internal/model"
)

func TestViewCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := testRootCmd(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{Reports: m.Path(".doccov-reports")}).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RootOutputFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := testRootCmd(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{Reports: m.Path("./reports-dir")}).Return(nil)

	cmd.SetArgs([]string{"view", "--output", "./reports-dir"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := testRootCmd(t, newViewCmd())

	cmd.SetArgs([]string{"view", "extra"})
	require.Error(t, cmd.Execute())
}
