package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparklineBlocks are block characters for 8-level vertical resolution (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

// RenderSparkline renders percentage data (0-100) as a single-row sparkline
// of exactly width cells, oldest value on the left.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	var result strings.Builder
	for _, val := range resampleData(data, width) {
		normalized := normalizeValue(val, 0, 100)
		idx := max(0, min(int(normalized*float64(len(sparklineBlocks)-1)), len(sparklineBlocks)-1))
		result.WriteRune(sparklineBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(result.String())
}

// resampleData resamples data to the target size.
// When downsampling, uses max-based sampling to preserve peaks.
// When upsampling, uses linear interpolation.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}

	if len(data) == targetSize {
		return data
	}

	result := make([]float64, targetSize)

	if len(data) == 1 {
		for i := range result {
			result[i] = data[0]
		}
		return result
	}

	if len(data) > targetSize {
		bucketSize := float64(len(data)) / float64(targetSize)
		for i := 0; i < targetSize; i++ {
			start := int(float64(i) * bucketSize)
			end := min(int(float64(i+1)*bucketSize), len(data))
			if start >= end {
				start = max(end-1, 0)
			}

			maxVal := data[start]
			for j := start + 1; j < end; j++ {
				maxVal = max(maxVal, data[j])
			}
			result[i] = maxVal
		}
		return result
	}

	scale := float64(len(data)-1) / float64(targetSize-1)
	for i := 0; i < targetSize; i++ {
		pos := float64(i) * scale
		idx := int(pos)
		frac := pos - float64(idx)

		if idx >= len(data)-1 {
			result[i] = data[len(data)-1]
		} else {
			result[i] = data[idx]*(1-frac) + data[idx+1]*frac
		}
	}

	return result
}
