package malloc

import (
	"os"
	"path/filepath"
	"testing"
)

// TestMain sandboxes MALLOC_LOG for the whole package: every Allocate,
// Release, and Resize call in these tests records a snapshot under the
// default logging build, and without this the process/time-derived default
// filename (internal/snapshot.logFilename) would litter the working
// directory with a JSON log file on every test run.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "ft-malloc-test-log")
	if err != nil {
		panic(err)
	}

	os.Setenv("MALLOC_LOG", filepath.Join(dir, "malloc_log.json"))

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
