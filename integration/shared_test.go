//go:build integration || database

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedBinaryPath holds the path to a shared fuzzyrank binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getBinary returns the path to the fuzzyrank binary, building it once if needed.
func getBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "fuzzyrank-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binPath := filepath.Join(tempDir, "fuzzyrank")
		buildCmd := exec.Command("go", "build", "-o", binPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if out, err := buildCmd.CombinedOutput(); err != nil {
			panic(fmt.Sprintf("failed to build fuzzyrank: %v\n%s", err, out))
		}

		sharedBinaryPath = binPath
	})

	return sharedBinaryPath
}

// runCommand runs the binary with args and returns its stdout. HOME points
// at home so default SQLite files never touch the real home directory.
func runCommand(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getBinary(), args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Logf("Command failed: %s\nStdout: %s\nStderr: %s", cmd.String(), stdout.String(), stderr.String())
		return stdout.String(), err
	}
	return stdout.String(), nil
}
