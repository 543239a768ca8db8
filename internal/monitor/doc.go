// Package monitor implements the rtop dashboard: a Bubble Tea program that
// lays out the table widgets, feeds them snapshots and routes input to them.
//
// # Message Flow
//
// The dashboard refreshes on a tick:
//
//  1. tickMsg fires at the configured rate (default 1s)
//  2. collectCmd asks the collect.Source for a snapshot
//  3. snapshotMsg arrives and every widget gets the new data
//  4. View draws each widget into its rectangle
//
// Freezing (f) keeps the current data on screen until it is unfrozen.
//
// # Layout
//
// One header line shows CPU and memory meters with sparklines from History.
// Below it the small widgets sit two per row above the process table, which
// takes the bottom half. Enter expands the focused widget to the full body
// and esc returns to the grid.
//
// # Input
//
// Dashboard keys (quit, focus, expand, freeze, help) are handled here. Any
// other key goes to the focused widget, which interprets table navigation
// and sorting. Left clicks focus the widget under the cursor and are passed
// to it so header clicks can change the sort column. The wheel scrolls.
//
// dd or delete in the process table opens a confirmation dialog for the
// highlighted process. Confirming terminates it and refreshes at once.
package monitor
