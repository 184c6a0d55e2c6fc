package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func box(text string, x, y, h float64) wordBox {
	return wordBox{text: text, centerX: x, centerY: y, height: h}
}

func TestComposeLinesEmpty(t *testing.T) {
	assert.Equal(t, "", composeLines(nil))
	assert.Equal(t, "", composeLines([]wordBox{box("  ", 0, 0, 10)}))
}

func TestComposeLinesSingleLine(t *testing.T) {
	words := []wordBox{
		box("world", 60, 10, 12),
		box("hello", 10, 11, 12),
	}
	// Same baseline within spacing; left-to-right by center X
	assert.Equal(t, "hello world", composeLines(words))
}

func TestComposeLinesMultipleLines(t *testing.T) {
	words := []wordBox{
		box("second", 10, 50, 12),
		box("first", 10, 10, 12),
		box("line", 70, 51, 12),
	}
	assert.Equal(t, "first\nsecond line", composeLines(words))
}

func TestComposeLinesSmallJitterStaysOneLine(t *testing.T) {
	// Vertical jitter below max(0.6*height, 8) keeps words together
	words := []wordBox{
		box("a", 10, 100, 20),
		box("b", 30, 108, 20),
		box("c", 50, 103, 20),
	}
	assert.Equal(t, "a b c", composeLines(words))
}

func TestComposeLinesTrimsWords(t *testing.T) {
	words := []wordBox{
		box(" spaced ", 10, 10, 12),
		box("out", 40, 10, 12),
	}
	assert.Equal(t, "spaced out", composeLines(words))
}

func TestComposeLinesDeterministic(t *testing.T) {
	words := []wordBox{
		box("gamma", 90, 30, 10),
		box("alpha", 10, 10, 10),
		box("beta", 50, 31, 10),
	}
	first := composeLines(words)
	second := composeLines(words)
	assert.Equal(t, first, second)
}

func TestLineSpacingFloor(t *testing.T) {
	// Tiny boxes floor the spacing at 8px
	words := []wordBox{box("a", 0, 0, 4), box("b", 0, 0, 4)}
	assert.Equal(t, 8.0, lineSpacing(words))

	// Larger boxes scale with the median height
	words = []wordBox{box("a", 0, 0, 20), box("b", 0, 0, 30)}
	assert.Equal(t, 15.0, lineSpacing(words))
}
