package collect

import (
	"context"
	"testing"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminate_MissingProcess(t *testing.T) {
	// PIDs are capped well below this on every supported platform.
	err := Terminate(context.Background(), 1<<30)
	require.Error(t, err)
	assert.ErrorIs(t, err, process.ErrorProcessNotRunning)
}
