package monitor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Plain output so rendered views can be compared as text
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name        string
		val, lo, hi float64
		want        float64
	}{
		{"bottom of range", 0, 0, 100, 0},
		{"top of range", 100, 0, 100, 1},
		{"middle", 25, 0, 100, 0.25},
		{"flat range", 5, 5, 5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, normalizeValue(tt.val, tt.lo, tt.hi), 1e-9)
		})
	}
}

func TestResampleData(t *testing.T) {
	tests := []struct {
		name       string
		data       []float64
		targetSize int
		wantLen    int
		wantNil    bool
	}{
		{
			name:       "empty data returns nil",
			data:       []float64{},
			targetSize: 10,
			wantNil:    true,
		},
		{
			name:       "zero target returns nil",
			data:       []float64{1, 2, 3},
			targetSize: 0,
			wantNil:    true,
		},
		{
			name:       "negative target returns nil",
			data:       []float64{1, 2, 3},
			targetSize: -5,
			wantNil:    true,
		},
		{
			name:       "same size returns original",
			data:       []float64{1, 2, 3},
			targetSize: 3,
			wantLen:    3,
		},
		{
			name:       "single value fills target",
			data:       []float64{42},
			targetSize: 5,
			wantLen:    5,
		},
		{
			name:       "downsampling reduces size",
			data:       []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			targetSize: 5,
			wantLen:    5,
		},
		{
			name:       "upsampling increases size",
			data:       []float64{0, 100},
			targetSize: 5,
			wantLen:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := resampleData(tt.data, tt.targetSize)
			if tt.wantNil {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}

func TestResampleData_DownsamplingPreservesPeaks(t *testing.T) {
	// Data with a spike in the middle
	data := []float64{10, 10, 10, 100, 10, 10, 10, 10, 10, 10}

	// Downsample to 5 points - the spike should be preserved
	result := resampleData(data, 5)

	require.Len(t, result, 5)

	// The bucket containing 100 should have max=100
	hasSpike := false
	for _, v := range result {
		if v == 100 {
			hasSpike = true
			break
		}
	}
	assert.True(t, hasSpike, "downsampling should preserve peak values")
}

func TestResampleData_UpsamplingInterpolates(t *testing.T) {
	data := []float64{0, 100}
	result := resampleData(data, 5)

	require.Len(t, result, 5)

	// Should interpolate: 0, 25, 50, 75, 100
	assert.InDelta(t, 0, result[0], 0.1)
	assert.InDelta(t, 25, result[1], 0.1)
	assert.InDelta(t, 50, result[2], 0.1)
	assert.InDelta(t, 75, result[3], 0.1)
	assert.InDelta(t, 100, result[4], 0.1)
}

func TestRenderSparkline(t *testing.T) {
	tests := []struct {
		name  string
		data  []float64
		width int
		want  string
	}{
		{"empty data", nil, 5, ""},
		{"zero width", []float64{50}, 0, ""},
		{"exact size", []float64{0, 100, 50}, 3, "▁█▄"},
		{"single value fills width", []float64{100}, 4, "████"},
		{"values above 100 are clamped", []float64{250}, 1, "█"},
		{"negative values are clamped", []float64{-10}, 1, "▁"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderSparkline(tt.data, tt.width, ColorGraph))
		})
	}
}
