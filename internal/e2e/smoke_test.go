package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runGW(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	stdout, stderr, err = runGW(t, binaryPath, home, "config", "init")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, filepath.Join(home, ".currency-gateway", "gateway.toml"))

	stdout, stderr, err = runGW(t, binaryPath, home, "config", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "module = 'DTLMoneyModule'")
	assert.Contains(t, stdout, "listen = '127.0.0.1:9010'")
}

func TestSmokeBalanceWithoutGateway(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, _, err := runGW(t, binaryPath, home,
		"balance",
		"--endpoint", "http://127.0.0.1:1/",
		"--account", "11111111-1111-4111-8111-111111111111",
		"--json",
	)
	require.Error(t, err)
	assert.Contains(t, stdout, "\"ok\": false")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "gw-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gw")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build gw binary: %s", string(output))
	return binaryPath
}

func runGW(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "GW_CONFIG=", "GW_LISTEN=", "GW_ENDPOINT=")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
