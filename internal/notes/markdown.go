package notes

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const previewMaxLen = 60

type importFrontmatter struct {
	Title string `yaml:"title"`
}

// ParseImport derives a title for an imported text file and returns the body
// to store as content. The title comes from a frontmatter `title`, then the
// first level-1 heading, then the filename. Frontmatter is stripped from the
// body only when it parses.
func ParseImport(content []byte, filename string) (string, string) {
	body := string(content)

	fmTitle, fmBody, ok := splitFrontmatter(content)
	if ok {
		body = fmBody
	}
	if fmTitle != "" {
		return fmTitle, body
	}

	if heading := firstHeading(body); heading != "" {
		return heading, body
	}

	return titleFromFilename(filepath.Base(filename)), body
}

func splitFrontmatter(content []byte) (string, string, bool) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return "", "", false
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return "", "", false
	}

	var fm importFrontmatter
	if err := yaml.Unmarshal(bytes.Join(lines[1:fmEnd], []byte("\n")), &fm); err != nil {
		return "", "", false
	}

	body := bytes.Join(lines[fmEnd+1:], []byte("\n"))
	body = bytes.TrimLeft(body, "\n")
	return strings.TrimSpace(fm.Title), string(body), true
}

func firstHeading(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			if n.(*ast.Heading).Level == 1 {
				title = strings.TrimSpace(string(n.Text(source)))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return title
}

// Preview returns a one-line summary of the first paragraphs of content,
// skipping headings.
func Preview(content string) string {
	source := []byte(content)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var preview strings.Builder
	paragraphs := 0

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading:
			return ast.WalkSkipChildren, nil
		case ast.KindParagraph:
			if paragraphs >= 2 {
				return ast.WalkStop, nil
			}
			lines := n.Lines()
			var para []string
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				if line := strings.TrimSpace(string(seg.Value(source))); line != "" {
					para = append(para, line)
				}
			}
			if len(para) > 0 {
				if preview.Len() > 0 {
					preview.WriteString(" ")
				}
				preview.WriteString(strings.Join(para, " "))
				paragraphs++
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	out := []rune(preview.String())
	if len(out) > previewMaxLen {
		return string(out[:previewMaxLen-3]) + "..."
	}
	return string(out)
}

func titleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)

	if name == "" {
		return "Imported note"
	}
	return name
}
