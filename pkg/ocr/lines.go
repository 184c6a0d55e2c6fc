package ocr

import (
	"math"
	"sort"
	"strings"
)

// wordBox is one recognized word with the center of its bounding box.
type wordBox struct {
	text    string
	centerX float64
	centerY float64
	height  float64
}

// composeLines rebuilds reading order from word bounding boxes: words
// whose vertical centers sit within one line-spacing of each other
// belong to the same line, and lines read left to right.
func composeLines(words []wordBox) string {
	kept := words[:0:0]
	for _, w := range words {
		if strings.TrimSpace(w.text) != "" {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return ""
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].centerY != kept[j].centerY {
			return kept[i].centerY < kept[j].centerY
		}
		return kept[i].centerX < kept[j].centerX
	})

	spacing := lineSpacing(kept)

	lines := [][]wordBox{{kept[0]}}
	for _, w := range kept[1:] {
		last := lines[len(lines)-1]
		if math.Abs(w.centerY-last[len(last)-1].centerY) <= spacing {
			lines[len(lines)-1] = append(last, w)
			continue
		}
		lines = append(lines, []wordBox{w})
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].centerX < line[j].centerX
		})
		texts := make([]string, 0, len(line))
		for _, w := range line {
			texts = append(texts, strings.TrimSpace(w.text))
		}
		out = append(out, strings.Join(texts, " "))
	}
	return strings.Join(out, "\n")
}

// lineSpacing derives the grouping threshold from the median word
// height, floored at 8px so noisy tiny boxes don't shred lines.
func lineSpacing(words []wordBox) float64 {
	heights := make([]float64, 0, len(words))
	for _, w := range words {
		heights = append(heights, w.height)
	}
	sort.Float64s(heights)

	var median float64
	n := len(heights)
	if n%2 == 1 {
		median = heights[n/2]
	} else {
		median = (heights[n/2-1] + heights[n/2]) / 2
	}

	return math.Max(median*0.6, 8)
}
