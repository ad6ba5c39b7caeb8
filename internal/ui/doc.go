// Package ui provides semantic text formatting for CLI output.
//
// Formatters render colorized text when the terminal supports it. When
// NO_COLOR is set or colors are unavailable, text decorations are used
// instead:
//
//	ui.Code.Sprint("zlang notes save k v") // `backticks`
//	ui.Highlight.Sprint("work")            // 'single quotes'
//	ui.Key.Sprint("")                      // "double quotes"
//	ui.Muted.Sprint("optional")            // (parentheses)
//
// FormatNote and FormatEntries render notes for the get, show, search and
// tag commands.
package ui
