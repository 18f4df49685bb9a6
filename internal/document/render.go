package document

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Render produces terminal output for the intro and every section and
// records each section's rendered line range. styleName selects a glamour
// style ("dark", "notty", ...); empty means auto-detection.
func (d *Document) Render(width int, styleName string) error {
	if width < 10 {
		width = 10
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if styleName == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(styleName))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}

	d.introLines = nil
	if d.Intro != "" {
		lines, err := renderChunk(r, d.Intro)
		if err != nil {
			return err
		}
		d.introLines = lines
	}

	d.bodyLines = nil
	for i := range d.Sections {
		lines, err := renderChunk(r, d.Sections[i].Raw)
		if err != nil {
			return err
		}
		d.Sections[i].Start = len(d.bodyLines)
		d.bodyLines = append(d.bodyLines, lines...)
		d.Sections[i].End = len(d.bodyLines)
	}
	return nil
}

func renderChunk(r *glamour.TermRenderer, raw string) ([]string, error) {
	out, err := r.Render(raw)
	if err != nil {
		return nil, fmt.Errorf("render section: %w", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// glamour pads with a leading blank line per chunk; keep exactly one
	// separator so line math stays stable across styles.
	for len(lines) > 1 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	return append(lines, ""), nil
}
