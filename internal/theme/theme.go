// Package theme is the static style table for the terminal UI.
//
// The palette mirrors the product's warm orange scheme:
//
//	background  #FFF7ED   (left to the terminal)
//	primary     #F97316   orange
//	primaryDark #C2410C   darker orange, emphasis
//	text        #111827   (terminal default)
//	textMuted   #6B7280   gray
//	danger      #DC2626   red
package theme

import "os"

// Enabled gates ANSI output. Honors the NO_COLOR convention.
var Enabled = os.Getenv("NO_COLOR") == ""

const (
	reset       = "\x1b[0m"
	primary     = "\x1b[38;5;208m"
	primaryDark = "\x1b[38;5;166m"
	muted       = "\x1b[38;5;245m"
	danger      = "\x1b[38;5;160m"
	bold        = "\x1b[1m"
)

func wrap(code, s string) string {
	if !Enabled {
		return s
	}
	return code + s + reset
}

// Primary styles calls to action.
func Primary(s string) string { return wrap(primary, s) }

// Emphasis styles headings and amounts.
func Emphasis(s string) string { return wrap(bold+primaryDark, s) }

// Muted styles secondary copy.
func Muted(s string) string { return wrap(muted, s) }

// Danger styles negative amounts.
func Danger(s string) string { return wrap(danger, s) }

// Bold styles titles.
func Bold(s string) string { return wrap(bold, s) }
