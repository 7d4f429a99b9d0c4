package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTestScriptErrors(t *testing.T) {
	_, err := LoadTestScript([]byte(`{`))
	assert.Error(t, err)

	_, err = LoadTestScript([]byte(`{"steps": []}`))
	assert.ErrorContains(t, err, "no steps")

	_, err = LoadTestScript([]byte(`{"steps": [{"action": "wait"}, {"action": "explode"}]}`))
	assert.ErrorContains(t, err, `step 1: unknown action "explode"`)
}

func TestTestRunnerDrivesApp(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "script.json"))
	require.NoError(t, err)
	runner, err := LoadTestScript(data)
	require.NoError(t, err)

	a := newTestApp(t, giftTestConfig(), testViewport, nil)
	a.SetTestRunner(runner)

	for i := 0; i < 200 && !runner.Done(); i++ {
		require.NoError(t, a.Update())
	}
	require.True(t, runner.Done())

	// the click at the center of the viewport opened the gate
	assert.Equal(t, StateRunning, a.State())
	assert.Equal(t, []string{"after orbit"}, a.screenshotQueue)

	_, theta, _ := a.Session().Controls.Spherical()
	assert.NotZero(t, theta, "drag orbited the camera")
}

func TestTestRunnerKeyStep(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "key"}, {"action": "wait", "frames": 1}]}`))
	require.NoError(t, err)

	a := newTestApp(t, giftTestConfig(), testViewport, nil)
	a.SetTestRunner(runner)
	require.NoError(t, a.Update())
	assert.Equal(t, StateRunning, a.State())
}
