package utils

import (
	"strings"
)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeHTMLEntities escapes the characters that Telegram requires escaped in messages sent with the HTML parse mode: <>&
// Quotes can contain any of these, so this runs on every quote before it's wrapped in HTML tags
func EscapeHTMLEntities(s string) string {
	return htmlEscaper.Replace(s)
}
