package orchestrator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hackeros/hbuild/internal/adapters/fs"
	"github.com/hackeros/hbuild/internal/adapters/telemetry"
	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hackeros/hbuild/internal/core/ports"
	"github.com/hackeros/hbuild/internal/core/ports/mocks"
	"github.com/hackeros/hbuild/internal/engine/native"
	"github.com/hackeros/hbuild/internal/engine/orchestrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orchestratorHarness struct {
	orch     *orchestrator.Orchestrator
	executor *mocks.MockExecutor
	ctrl     *gomock.Controller
}

func setupOrchestratorTest(t *testing.T) orchestratorHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := mocks.NewMockExecutor(ctrl)
	tracer := telemetry.NewNoOpTracer()
	engine := native.New(fs.NewLocator(), executor, mockLogger, tracer)
	orch := orchestrator.New(engine, executor, mockLogger, tracer)

	return orchestratorHarness{orch: orch, executor: executor, ctrl: ctrl}
}

func testConfig(languages ...string) *domain.Config {
	return &domain.Config{
		Metadata: domain.Metadata{Name: "proj", Version: "1.0.0"},
		Specs:    domain.Specs{Languages: languages},
		Build:    domain.BuildSpec{Target: "proj", Kind: domain.KindExecutable},
	}
}

func TestOrchestrator_Run_ExternalLanguage(t *testing.T) {
	h := setupOrchestratorTest(t)
	root := t.TempDir()

	h.executor.EXPECT().Run(gomock.Any(), ports.Command{
		Name: "cargo", Args: []string{"build"}, Dir: root,
	}).Return(ports.Outcome{}, nil)

	report := h.orch.Run(context.Background(), root, testConfig("rust"), nil)

	require.Len(t, report.Results, 1)
	assert.Equal(t, domain.StatusSucceeded, report.Results[0].Status)
}

func TestOrchestrator_Run_UnsupportedLanguageSkipped(t *testing.T) {
	h := setupOrchestratorTest(t)

	report := h.orch.Run(context.Background(), t.TempDir(), testConfig("cobol"), nil)

	require.Len(t, report.Results, 1)
	assert.Equal(t, domain.StatusSkipped, report.Results[0].Status)
	assert.NoError(t, report.Results[0].Err)
}

func TestOrchestrator_Run_FailureDoesNotHaltRemaining(t *testing.T) {
	h := setupOrchestratorTest(t)
	root := t.TempDir()

	gomock.InOrder(
		h.executor.EXPECT().Run(gomock.Any(), ports.Command{
			Name: "cargo", Args: []string{"build"}, Dir: root,
		}).Return(ports.Outcome{ExitCode: 101, Stderr: "error[E0308]"}, nil),
		h.executor.EXPECT().Run(gomock.Any(), ports.Command{
			Name: "go", Args: []string{"build"}, Dir: root,
		}).Return(ports.Outcome{}, nil),
	)

	report := h.orch.Run(context.Background(), root, testConfig("rust", "go"), nil)

	require.Len(t, report.Results, 2)
	assert.Equal(t, domain.StatusFailed, report.Results[0].Status)
	assert.Error(t, report.Results[0].Err)
	assert.Equal(t, domain.StatusSucceeded, report.Results[1].Status)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "rust", failed[0].Language)
}

func TestOrchestrator_Run_PythonWithoutRequirements(t *testing.T) {
	h := setupOrchestratorTest(t)

	// No requirements.txt: nothing to do, no executor call.
	report := h.orch.Run(context.Background(), t.TempDir(), testConfig("python"), nil)

	require.Len(t, report.Results, 1)
	assert.Equal(t, domain.StatusSucceeded, report.Results[0].Status)
}

func TestOrchestrator_Run_PythonWithRequirements(t *testing.T) {
	h := setupOrchestratorTest(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("requests\n"), 0o644))

	h.executor.EXPECT().Run(gomock.Any(), ports.Command{
		Name: "pip", Args: []string{"install", "-r", "requirements.txt"}, Dir: root,
	}).Return(ports.Outcome{}, nil)

	report := h.orch.Run(context.Background(), root, testConfig("python"), nil)
	assert.Equal(t, domain.StatusSucceeded, report.Results[0].Status)
}

func TestOrchestrator_Run_SpawnFailureIsFailed(t *testing.T) {
	h := setupOrchestratorTest(t)

	h.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(
		ports.Outcome{}, domain.ErrToolchain,
	)

	report := h.orch.Run(context.Background(), t.TempDir(), testConfig("odin"), nil)
	assert.Equal(t, domain.StatusFailed, report.Results[0].Status)
}

func TestOrchestrator_Run_WritesRecords(t *testing.T) {
	h := setupOrchestratorTest(t)
	root := t.TempDir()

	h.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(ports.Outcome{}, nil)

	store := mocks.NewMockRecordStore(h.ctrl)
	var written []domain.BuildRecord
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(rec domain.BuildRecord) error {
		written = append(written, rec)
		return nil
	}).Times(2)

	report := h.orch.Run(context.Background(), root, testConfig("rust", "cobol"), store)
	require.Len(t, report.Results, 2)

	require.Len(t, written, 2)
	assert.Equal(t, "rust", written[0].Language)
	assert.Equal(t, domain.StatusSucceeded, written[0].Status)
	assert.False(t, written[0].Timestamp.IsZero())
	assert.Equal(t, "cobol", written[1].Language)
	assert.Equal(t, domain.StatusSkipped, written[1].Status)
}

func TestOrchestrator_Run_StoreFailureDoesNotFailBuild(t *testing.T) {
	h := setupOrchestratorTest(t)

	h.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(ports.Outcome{}, nil)

	store := mocks.NewMockRecordStore(h.ctrl)
	store.EXPECT().Put(gomock.Any()).Return(domain.ErrToolchain)

	report := h.orch.Run(context.Background(), t.TempDir(), testConfig("rust"), store)
	assert.Equal(t, domain.StatusSucceeded, report.Results[0].Status)
}
