// Package assemble renders per-file recognition results into the
// single text block returned to the user.
package assemble

import (
	"fmt"
	"strings"

	"github.com/textlift/textlift/pkg/document"
)

const (
	// EmptyBodyPlaceholder stands in for a file that produced no text.
	EmptyBodyPlaceholder = "(no text detected)"

	pageSeparator  = "\n\n"
	blockSeparator = "\n\n"
)

// Build renders the results in order: one markdown heading per file,
// then that file's page texts joined by a blank line. Every input file
// gets a heading, failed or empty ones included, so the reader can
// always match blocks to uploads. Output is deterministic for a given
// input sequence.
func Build(results []document.FileResult) string {
	blocks := make([]string, 0, len(results))
	for _, res := range results {
		var b strings.Builder
		b.WriteString("# ")
		b.WriteString(res.Name)
		b.WriteString("\n")
		b.WriteString(body(res))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, blockSeparator)
}

func body(res document.FileResult) string {
	if res.Err != nil {
		return fmt.Sprintf("[error] failed to process %s: %v", res.Name, res.Err)
	}

	texts := make([]string, 0, len(res.Fragments))
	for _, frag := range res.Fragments {
		if strings.TrimSpace(frag.Text) == "" {
			continue
		}
		texts = append(texts, frag.Text)
	}
	if len(texts) == 0 {
		return EmptyBodyPlaceholder
	}
	return strings.Join(texts, pageSeparator)
}
