// Package cli holds terminal helpers for the sortcheck command: boxed section
// banners, dividers, and interactive selection.
package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/amp-labs/amp-algorithms/envutil"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignment of text inside a banner.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	// DefaultTerminalWidth is used when COLUMNS is unset or invalid.
	DefaultTerminalWidth = 80

	borderWidth = 2
)

// TerminalWidth returns the width from the COLUMNS variable, or DefaultTerminalWidth.
func TerminalWidth() int {
	width := envutil.Int("COLUMNS", envutil.Default(DefaultTerminalWidth)).ValueOrElse(DefaultTerminalWidth)
	if width <= borderWidth {
		return DefaultTerminalWidth
	}

	return width
}

// Divider returns a horizontal rule of the given total width, with a trailing newline.
func Divider(width int) string {
	if width <= borderWidth {
		return ""
	}

	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, width-borderWidth), dividerRight)
}

// Banner draws s inside a box of the given total width. Multi-line text gets
// one row per line; lines that do not fit are truncated with an ellipsis.
func Banner(s string, width int, alignment Alignment) string {
	if width <= borderWidth {
		return ""
	}

	inner := width - borderWidth
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")

	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range lines {
		parts = append(parts, boxSide+pad(l, inner, alignment)+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

func truncateGraphic(s string, n int) string {
	var out strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}

		if count > n {
			break
		}

		out.WriteRune(r)
	}

	return out.String()
}

func pad(text string, width int, alignment Alignment) string {
	length := countGraphic(text)
	if length > width {
		text = truncateGraphic(text, width-1) + ellipsis
		length = width
	}

	diff := width - length

	switch alignment {
	case AlignCenter:
		left := diff / 2 //nolint:mnd

		return strings.Repeat(" ", left) + text + strings.Repeat(" ", diff-left)
	case AlignRight:
		return strings.Repeat(" ", diff) + text
	default:
		return text + strings.Repeat(" ", diff)
	}
}
