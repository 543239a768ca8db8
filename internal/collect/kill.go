package collect

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// Terminate asks the process with the given PID to exit: SIGTERM on Unix,
// TerminateProcess on Windows.
func Terminate(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return fmt.Errorf("process %d: %w", pid, err)
	}
	if err := p.TerminateWithContext(ctx); err != nil {
		return fmt.Errorf("terminate %d: %w", pid, err)
	}
	return nil
}
