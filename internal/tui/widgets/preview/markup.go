package preview

import (
	"html"
	"strings"

	"rtedit/internal/richtext"
)

// piece is a styled fragment of one line.
type piece struct {
	text   string
	styles richtext.StyleSet
}

// lines splits a document into per-line styled fragments.
func lines(st *richtext.State) [][]piece {
	out := [][]piece{nil}
	for _, run := range st.Runs() {
		for i, part := range strings.Split(run.Text, "\n") {
			if i > 0 {
				out = append(out, nil)
			}
			if part != "" {
				out[len(out)-1] = append(out[len(out)-1], piece{text: part, styles: run.Styles})
			}
		}
	}
	return out
}

// wrapper is an inline style's opening and closing markup.
type wrapper struct {
	style      richtext.Style
	open, shut string
}

// Inner wrappers come first.
var (
	markdownWrappers = []wrapper{
		{richtext.Code, "`", "`"},
		{richtext.Strikethrough, "~~", "~~"},
		{richtext.Italic, "_", "_"},
		{richtext.Bold, "**", "**"},
		{richtext.Underline, "<u>", "</u>"},
	}
	htmlWrappers = []wrapper{
		{richtext.Code, "<code>", "</code>"},
		{richtext.Strikethrough, "<del>", "</del>"},
		{richtext.Italic, "<em>", "</em>"},
		{richtext.Bold, "<strong>", "</strong>"},
		{richtext.Underline, "<ins>", "</ins>"},
	}
	markdownEscaper = strings.NewReplacer(
		`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "~", `\~`, "<", `\<`, "#", `\#`,
	)
)

func wrap(text string, styles richtext.StyleSet, ws []wrapper) string {
	core := strings.TrimSpace(text)
	if core == "" {
		return text
	}
	lead := text[:strings.Index(text, core)]
	trail := text[len(lead)+len(core):]
	for _, w := range ws {
		if styles.Has(w.style) {
			core = w.open + core + w.shut
		}
	}
	return lead + core + trail
}

// Markdown serializes a document to Markdown, one paragraph per line.
// Underline has no Markdown syntax and is written as inline HTML.
func Markdown(st *richtext.State) string {
	ls := lines(st)
	paras := make([]string, len(ls))
	for i, l := range ls {
		var b strings.Builder
		for _, p := range l {
			text := p.text
			if !p.styles.Has(richtext.Code) {
				text = markdownEscaper.Replace(text)
			}
			b.WriteString(wrap(text, p.styles, markdownWrappers))
		}
		paras[i] = b.String()
	}
	return strings.Join(paras, "\n\n")
}

// HTML serializes a document to HTML, one <p> per line.
func HTML(st *richtext.State) string {
	var b strings.Builder
	for _, l := range lines(st) {
		b.WriteString("<p>")
		for _, p := range l {
			b.WriteString(wrap(html.EscapeString(p.text), p.styles, htmlWrappers))
		}
		b.WriteString("</p>\n")
	}
	return b.String()
}
