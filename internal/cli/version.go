package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/rtop/internal/config"
)

// BuildInfo describes the binary. Fields are stamped through ldflags in
// cmd/rtop and handed over with SetVersionInfo.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var build = BuildInfo{Version: "dev", Commit: "none", Date: "unknown"}

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit, build date and config schema version of rtop.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), versionShort)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

// SetVersionInfo records the build stamp and exposes it as `rtop --version`.
func SetVersionInfo(version, commit, date string) {
	build = BuildInfo{Version: version, Commit: commit, Date: date}
	rootCmd.Version = build.Display()
}

// Display is the version as shown to users: release builds get a v prefix,
// dev builds are left alone.
func (b BuildInfo) Display() string {
	if b.Version == "" || b.Version == "dev" || strings.HasPrefix(b.Version, "v") {
		return b.Version
	}
	return "v" + b.Version
}

func printVersion(w io.Writer, short bool) {
	if short {
		fmt.Fprintln(w, build.Version)
		return
	}

	fmt.Fprintf(w, "rtop %s\n", build.Display())
	fmt.Fprintf(w, "commit: %s\n", build.Commit)
	fmt.Fprintf(w, "built: %s\n", build.Date)
	fmt.Fprintf(w, "config schema: %d\n", config.CurrentConfigVersion)
	fmt.Fprintf(w, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
