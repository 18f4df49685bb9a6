// Package document turns a markdown source into the ordered section list
// and rendered lines the navigator tracks.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aabacada/navihive/navigator"
)

// Section is one navigable chunk of the document: a heading plus everything
// under it until the next heading of the same or shallower level.
type Section struct {
	ID    int
	Label string
	Level int
	Raw   string // raw markdown, heading line included

	// Rendered line range, filled by Render. Start is relative to the
	// document's rendered body; End is exclusive.
	Start int
	End   int
}

// Document is a parsed markdown file.
type Document struct {
	Path     string
	Title    string
	Intro    string // raw markdown before the first section heading
	Sections []Section

	introLines []string
	bodyLines  []string
}

// Load reads and parses a markdown file.
func Load(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	d, err := Parse(src, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	d.Path = path
	return d, nil
}

// Parse splits markdown into sections. Sections are delimited by the
// shallowest heading level present; a heading-less document becomes a
// single synthetic section so the navigator always has something to track.
func Parse(src []byte, name string) (*Document, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	level := shallowestHeading(root)
	d := &Document{Title: strings.TrimSuffix(name, filepath.Ext(name))}

	if level == 0 {
		d.Sections = []Section{{ID: 1, Label: d.Title, Level: 1, Raw: string(src)}}
		return d, nil
	}

	// Byte offset of each delimiting heading's line start.
	var starts []int
	var labels []string
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != level || h.Lines().Len() == 0 {
			continue
		}
		starts = append(starts, lineStart(src, h.Lines().At(0).Start))
		labels = append(labels, string(h.Text(src)))
	}

	if len(starts) == 0 {
		d.Sections = []Section{{ID: 1, Label: d.Title, Level: 1, Raw: string(src)}}
		return d, nil
	}

	d.Intro = strings.TrimSpace(string(src[:starts[0]]))
	if t := firstHeadingText(root, src); t != "" && level > 1 {
		d.Title = t
	}

	for i := range starts {
		end := len(src)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		d.Sections = append(d.Sections, Section{
			ID:    i + 1,
			Label: labels[i],
			Level: level,
			Raw:   strings.TrimRight(string(src[starts[i]:end]), "\n"),
		})
	}
	return d, nil
}

// NavigatorSections projects the document onto the engine's section type.
func (d *Document) NavigatorSections() []navigator.Section {
	out := make([]navigator.Section, 0, len(d.Sections))
	for _, s := range d.Sections {
		out = append(out, navigator.Section{ID: s.ID, Label: s.Label})
	}
	return out
}

// SectionRange returns a section's rendered line range. Valid after Render.
func (d *Document) SectionRange(id int) (start, end int, ok bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s.Start, s.End, true
		}
	}
	return 0, 0, false
}

// IntroLines and BodyLines expose the rendered output. Valid after Render.
func (d *Document) IntroLines() []string { return d.introLines }
func (d *Document) BodyLines() []string  { return d.bodyLines }

func shallowestHeading(root ast.Node) int {
	level := 0
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Lines().Len() > 0 {
			if level == 0 || h.Level < level {
				level = h.Level
			}
		}
	}
	return level
}

func firstHeadingText(root ast.Node, src []byte) string {
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			return string(h.Text(src))
		}
	}
	return ""
}

// lineStart walks back from a byte offset to the start of its line. Heading
// segments begin after the "#" prefix, so the raw slice needs the full line.
func lineStart(src []byte, off int) int {
	for off > 0 && src[off-1] != '\n' {
		off--
	}
	return off
}
