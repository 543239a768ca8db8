// Package cli implements the rtop command-line interface.
//
// The root command starts the dashboard. It loads the config file, applies
// flag overrides, validates the result and hands it to the monitor package.
// The dashboard refuses to start unless stdin and stdout are terminals.
//
// # Command Structure
//
//	rtop                  - Run the dashboard
//	rtop config init      - Create a config file (huh prompts unless --yes)
//	rtop config show      - Print the resolved config as YAML
//	rtop config set k v   - Change one key in the config file
//	rtop completion SHELL - Generate shell completions
//	rtop version          - Print build information
//
// # Flag Handling
//
// --config and --no-color are persistent. The dashboard flags (--rate,
// --basic, --default-widget, --temperature-unit,
// --show-table-scroll-position, --right-to-left) only override the file
// when given explicitly, so `rtop config show --rate 2s` shows exactly what
// `rtop --rate 2s` would run with.
package cli
