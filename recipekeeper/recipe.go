package recipekeeper

import (
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ParseRecipe builds a Recipe from markdown source. The name is the first
// level-1 heading; without one, the base name of source is used.
func ParseRecipe(id, source string, markdown []byte) Recipe {
	r := Recipe{
		ID:       id,
		Markdown: string(markdown),
		Source:   source,
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(markdown))

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			if r.Name == "" && n.Level == 1 {
				r.Name = inlineText(n, markdown)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if r.Summary == "" {
				r.Summary = inlineText(n, markdown)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if r.Name == "" {
		r.Name = nameFromSource(source, id)
	}
	return r
}

// inlineText concatenates the text segments below n, turning soft line
// breaks into spaces.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.CodeSpan:
			for child := t.FirstChild(); child != nil; child = child.NextSibling() {
				if seg, ok := child.(*ast.Text); ok {
					b.Write(seg.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func nameFromSource(source, id string) string {
	base := filepath.Base(source)
	if source == "" || base == "." || base == string(filepath.Separator) {
		return id
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
