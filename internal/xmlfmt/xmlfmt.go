// Package xmlfmt renders XML trees in the exact layout the IDE writes scheme files in.
//
// The layout differs from a conventional pretty printer: indentation steps by three
// spaces, every attribute sits on its own line as key = "value", and an element
// always closes on its own line, even when it has no children.
package xmlfmt

import (
	"io"
	"strings"

	"github.com/beevik/etree"
)

// IndentStep is the number of spaces added per nesting level.
const IndentStep = 3

// DefaultDeclaration is the XML declaration used when a document carries none.
const DefaultDeclaration = `version="1.0" encoding="UTF-8"`

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// Format renders the whole document, declaration included.
// The result always ends with exactly one newline.
func Format(doc *etree.Document) string {
	var b strings.Builder

	b.WriteString("<?xml ")
	b.WriteString(Declaration(doc))
	b.WriteString("?>\n")

	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			writeElement(&b, t, 0)
			b.WriteByte('\n')
		case *etree.Comment:
			writeComment(&b, t, 0)
		case *etree.ProcInst:
			if t.Target == "xml" {
				continue
			}
			b.WriteString("<?" + t.Target + " " + t.Inst + "?>\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatElement renders a single element subtree at the given nesting level, without a trailing newline.
func FormatElement(e *etree.Element, level int) string {
	var b strings.Builder
	writeElement(&b, e, level*IndentStep)
	return b.String()
}

// Write renders doc into w.
func Write(w io.Writer, doc *etree.Document) (int64, error) {
	n, err := io.WriteString(w, Format(doc))
	return int64(n), err
}

// Declaration returns the attributes of the document's XML declaration with double quotes.
// A declaration written with single quotes is normalized; a missing one yields DefaultDeclaration.
func Declaration(doc *etree.Document) string {
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return strings.ReplaceAll(strings.TrimSpace(pi.Inst), "'", `"`)
		}
	}
	return DefaultDeclaration
}

func writeElement(b *strings.Builder, e *etree.Element, indent int) {
	pad := strings.Repeat(" ", indent)
	attrPad := strings.Repeat(" ", indent+IndentStep)

	b.WriteString(pad)
	b.WriteByte('<')
	b.WriteString(e.FullTag())
	for i := range e.Attr {
		a := &e.Attr[i]
		b.WriteByte('\n')
		b.WriteString(attrPad)
		b.WriteString(a.FullKey())
		b.WriteString(` = "`)
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteByte('"')
	}
	b.WriteString(">\n")

	for _, tok := range e.Child {
		switch c := tok.(type) {
		case *etree.Element:
			writeElement(b, c, indent+IndentStep)
			b.WriteByte('\n')
		case *etree.CharData:
			if c.IsWhitespace() {
				continue
			}
			b.WriteString(attrPad)
			b.WriteString(textEscaper.Replace(strings.TrimSpace(c.Data)))
			b.WriteByte('\n')
		case *etree.Comment:
			writeComment(b, c, indent+IndentStep)
		}
	}

	b.WriteString(pad)
	b.WriteString("</")
	b.WriteString(e.FullTag())
	b.WriteByte('>')
}

func writeComment(b *strings.Builder, c *etree.Comment, indent int) {
	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString("<!--")
	b.WriteString(c.Data)
	b.WriteString("-->\n")
}
