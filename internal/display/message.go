package display

import (
	"fmt"
	"strings"
)

// Message is a status line message with a terse form and an optional
// verbose continuation.
type Message struct {
	Short string
	Long  string
}

// Msg returns a message with only a short form.
func Msg(short string) Message {
	return Message{Short: short}
}

// Text combines the message forms and arguments. On narrow displays the
// verbose part is dropped. Arguments are substituted into the text when it
// has verbs for them, otherwise they are appended separated by spaces.
func (m Message) Text(narrow bool, args ...any) string {
	text := m.Short
	if !narrow {
		text += m.Long
	}
	if len(args) == 0 {
		return text
	}

	if strings.Contains(text, "%") {
		formatted := fmt.Sprintf(text, args...)
		if !strings.Contains(formatted, "%!") {
			return formatted
		}
	}

	parts := make([]string, 0, len(args)+1)
	if text != "" {
		parts = append(parts, text)
	}
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, " ")
}
