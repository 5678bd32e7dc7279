//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedCitescopePath holds the path to a shared citescope binary built once for all tests.
	sharedCitescopePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getCitescopeBinary returns the path to the citescope binary, building it once if needed.
func getCitescopeBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "citescope-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		citescopePath := filepath.Join(tempDir, "citescope")
		buildCmd := exec.Command("go", "build", "-o", citescopePath, "./cmd/citescope")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build citescope: %v", err))
		}

		sharedCitescopePath = citescopePath
	})

	return sharedCitescopePath
}

// writeFixtureCSV writes a small bibliography CSV and returns its path.
func writeFixtureCSV(t *testing.T, name string) string {
	t.Helper()
	content := "title,authors\n" +
		"Viral entry mechanisms,Smith J; Chen L\n" +
		"Replication kinetics,Smith J\n" +
		"Host immune response,Garcia M; Smith J\n" +
		"Vaccine efficacy,Chen L\n"
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}
