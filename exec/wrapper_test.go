package exec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/gen/exec"
)

// mockExecutor is a testify mock of exec.Executor.
type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) WithEnv(env map[string]string) exec.Executor {
	m.Called(env)
	return m
}

func (m *mockExecutor) WithDir(dir string) exec.Executor {
	m.Called(dir)
	return m
}

func (m *mockExecutor) WithContext(ctx context.Context) exec.Executor {
	m.Called(ctx)
	return m
}

func (m *mockExecutor) WithDisableColors() exec.Executor {
	m.Called()
	return m
}

func (m *mockExecutor) WithInheritEnv() exec.Executor {
	m.Called()
	return m
}

func (m *mockExecutor) Run(args ...string) (*exec.Result, error) {
	ret := m.Called(args)
	result, _ := ret.Get(0).(*exec.Result)
	return result, ret.Error(1)
}

func (m *mockExecutor) Clone() exec.Executor {
	m.Called()
	return m
}

func TestWrapper_PrependsCommand(t *testing.T) {
	m := &mockExecutor{}
	m.On("WithDir", "/workspace").Once()
	m.On("Run", []string{"cargo", "metadata", "--no-deps"}).
		Return(&exec.Result{Stdout: "{}"}, nil).Once()

	cargo := exec.NewWrapper(m, "cargo")
	result, err := cargo.WithDir("/workspace").Run("metadata", "--no-deps")

	require.NoError(t, err)
	assert.Equal(t, "{}", result.Stdout)
	assert.Equal(t, "cargo", cargo.Name())
	m.AssertExpectations(t)
}

func TestWrapper_ForwardsConfiguration(t *testing.T) {
	ctx := context.Background()
	m := &mockExecutor{}
	m.On("WithEnv", map[string]string{"A": "1"}).Once()
	m.On("WithContext", ctx).Once()
	m.On("WithDisableColors").Once()
	m.On("WithInheritEnv").Once()
	m.On("Run", []string{"cargo"}).Return(&exec.Result{}, nil).Once()

	_, err := exec.NewWrapper(m, "cargo").
		WithEnv(map[string]string{"A": "1"}).
		WithContext(ctx).
		WithDisableColors().
		WithInheritEnv().
		Run()

	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestWrapper_Clone(t *testing.T) {
	m := &mockExecutor{}
	m.On("Clone").Once()
	m.On("Run", []string{"cargo", "version"}).Return(&exec.Result{Stdout: "cargo 1.80.0"}, nil).Once()

	clone := exec.NewWrapper(m, "cargo").Clone()
	result, err := clone.Run("version")

	require.NoError(t, err)
	assert.Equal(t, "cargo 1.80.0", result.Stdout)
	m.AssertExpectations(t)
}

func TestWrapper_RealCommand(t *testing.T) {
	result, err := exec.NewWrapper(exec.New(), "go").Run("env", "GOOS")
	if err != nil {
		t.Skipf("go toolchain not available: %v", err)
	}
	assert.NotEmpty(t, result.Stdout)
}
