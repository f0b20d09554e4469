package styles

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
)

// GetChromaStyle builds a chroma style matching the current theme
func GetChromaStyle() *chroma.Style {
	t := CurrentTheme()

	style, err := chroma.NewStyle(t.Name, chroma.StyleEntries{
		chroma.Text:          colorToHex(t.FgBase),
		chroma.Error:         colorToHex(t.Error),
		chroma.Comment:       colorToHex(t.FgMuted) + " italic",
		chroma.Keyword:       colorToHex(t.Primary) + " bold",
		chroma.Operator:      colorToHex(t.Orange),
		chroma.Punctuation:   colorToHex(t.FgSubtle),
		chroma.Name:          colorToHex(t.FgBase),
		chroma.NameAttribute: colorToHex(t.Cyan),
		chroma.NameTag:       colorToHex(t.Secondary),
		chroma.Literal:       colorToHex(t.Green),
		chroma.LiteralNumber: colorToHex(t.Yellow),
		chroma.LiteralString: colorToHex(t.Yellow),
	})
	if err != nil {
		return chroma.MustNewStyle("plain", chroma.StyleEntries{chroma.Text: colorToHex(t.FgBase)})
	}
	return style
}

// HighlightINI colors a settings file for the terminal. If highlighting
// fails the text is returned as is.
func HighlightINI(text string) string {
	lexer := lexers.Get("ini")
	if lexer == nil {
		return text
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		return text
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	var sb strings.Builder
	if err := formatter.Format(&sb, GetChromaStyle(), iterator); err != nil {
		return text
	}
	return sb.String()
}
