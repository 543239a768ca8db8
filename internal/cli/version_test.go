package cli

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/rtop/internal/config"
)

// withBuild swaps in a build stamp for the duration of a test.
func withBuild(t *testing.T, version, commit, date string) {
	t.Helper()
	saved, savedRoot := build, rootCmd.Version
	t.Cleanup(func() {
		build = saved
		rootCmd.Version = savedRoot
		versionShort = false
		if f := rootCmd.Flags().Lookup("version"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	})
	SetVersionInfo(version, commit, date)
}

func TestPrintVersion(t *testing.T) {
	withBuild(t, "1.4.0", "abc1234", "2026-03-01T12:00:00Z")

	var buf bytes.Buffer
	printVersion(&buf, false)

	want := strings.Join([]string{
		"rtop v1.4.0",
		"commit: abc1234",
		"built: 2026-03-01T12:00:00Z",
		fmt.Sprintf("config schema: %d", config.CurrentConfigVersion),
		fmt.Sprintf("go: %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintVersion_Short(t *testing.T) {
	withBuild(t, "1.4.0", "abc1234", "today")

	var buf bytes.Buffer
	printVersion(&buf, true)
	assert.Equal(t, "1.4.0\n", buf.String())
}

func TestBuildInfoDisplay(t *testing.T) {
	tests := map[string]string{
		"":             "",
		"dev":          "dev",
		"1.2.3":        "v1.2.3",
		"v1.2.3":       "v1.2.3",
		"1.2.3-beta.1": "v1.2.3-beta.1",
	}
	for in, want := range tests {
		assert.Equal(t, want, BuildInfo{Version: in}.Display(), "version %q", in)
	}
}

func TestVersionCommand(t *testing.T) {
	withBuild(t, "2.0.0", "def5678", "2026-06-15")

	out, err := runRoot(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", strings.TrimSpace(out))

	out, err = runRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "v2.0.0")
}
