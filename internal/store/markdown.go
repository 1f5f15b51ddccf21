package store

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var errNotText = errors.New("not valid UTF-8 text")

// Planning files are GitHub-flavoured markdown; STATE.md keeps its metrics in a table.
var planningMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

func parseMarkdown(src []byte) (ast.Node, error) {
	if !utf8.Valid(src) {
		return nil, errNotText
	}
	return planningMarkdown.Parser().Parse(text.NewReader(src)), nil
}

// nodeText flattens the inline text below n, dropping markup.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// lineStart returns the offset of the first byte of the line containing pos.
func lineStart(src []byte, pos int) int {
	for pos > 0 && src[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset just past the newline ending the line containing pos.
func lineEnd(src []byte, pos int) int {
	for pos < len(src) && src[pos] != '\n' {
		pos++
	}
	if pos < len(src) {
		pos++
	}
	return pos
}

// fieldValue reads a "**Name:** value" line; the plain "Name: value" and
// "**Name**: value" forms are accepted too.
func fieldValue(line, name string) (string, bool) {
	l := strings.ReplaceAll(strings.TrimSpace(line), "**", "")
	prefix := name + ":"
	if len(l) < len(prefix) || !strings.EqualFold(l[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(l[len(prefix):]), true
}

// leadingInt parses the decimal prefix of s.
func leadingInt(s string) (int, string, bool) {
	s = strings.TrimSpace(s)
	i := 0
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
		if n > 1<<20 {
			return 0, s, false
		}
	}
	if i == 0 {
		return 0, s, false
	}
	return n, strings.TrimSpace(s[i:]), true
}
