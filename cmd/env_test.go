// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> extension -> engine -> table loading.
//
// The engine itself has package-level unit tests (internal/topics,
// internal/centreid, internal/bundle). The tests here cover the wiring:
// flag handling, table resolution, output formats and exit codes.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// fixtureTables is a trimmed copy of the real WTH reference tables.
var fixtureTables = map[string]string{
	"channel.csv":           "name,description\norigin,Originating centres\ncache,Global caches\n",
	"version.csv":           "name,description\na,Version a\n",
	"system.csv":            "name,description\nwis2,WIS 2.0\n",
	"centre-id.csv":         "name,description\nca-eccc-msc,MSC\nio-wis2dev-11-test,Test centre\n",
	"notification-type.csv": "name,description\ndata,Data\nmetadata,Metadata\n",
	"data-policy.csv":       "name,description\ncore,Core\nrecommended,Recommended\n",
	// The real table lists every node of the discipline tree, not just
	// the leaves.
	"earth-system-discipline.csv": "name,description\n" +
		"ocean,Ocean\n" +
		"weather,Weather\n" +
		"weather/advisories-warnings,Advisories\n" +
		"weather/aviation,Aviation\n" +
		"weather/aviation/metar,METAR\n" +
		"weather/surface-based-observations,Surface obs\n",
	"tlds-alpha-by-domain.txt": "# Version 2025083100\nCA\nINT\nIO\n",
}

// buildBinary compiles the wistopics binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "wistopics-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "wistopics"
		if os.PathSeparator == '\\' {
			binaryName = "wistopics.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	home   string
	tables string
	binary string
}

// newTestEnv creates an isolated home directory with a synced fixture
// bundle and returns an environment for running the binary against it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	home := t.TempDir()

	tables := filepath.Join(home, "tables")
	if err := os.MkdirAll(tables, 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range fixtureTables {
		if err := os.WriteFile(filepath.Join(tables, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return &testEnv{t: t, home: home, tables: tables, binary: binary}
}

// run executes wistopics with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("wistopics %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes wistopics and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.home
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"USERPROFILE="+e.home,
		"WISTOPICS_TABLES="+e.tables,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains asserts that output includes the given substring.
func (e *testEnv) contains(out, want string) {
	e.t.Helper()
	if !strings.Contains(out, want) {
		e.t.Errorf("output %q does not contain %q", out, want)
	}
}
