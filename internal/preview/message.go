package preview

import (
	"fmt"
	"strings"
)

// Level is a flashed message category. Values map onto Bootstrap's
// contextual colour names.
type Level string

const (
	LevelSuccess Level = "success"
	LevelDanger  Level = "danger"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

var levelAliases = map[string]Level{
	"success": LevelSuccess,
	"danger":  LevelDanger,
	"error":   LevelDanger,
	"warning": LevelWarning,
	"info":    LevelInfo,
}

// Message is one toast on the preview page.
type Message struct {
	Level Level
	Text  string
}

// ParseMessage parses "text" or "text:level". The suffix is only treated as
// a level when it names one, so "Note: read this" stays a single info text.
func ParseMessage(s string) (Message, error) {
	m := Message{Text: s, Level: LevelInfo}
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		if lvl, ok := levelAliases[strings.ToLower(strings.TrimSpace(s[i+1:]))]; ok {
			m.Text, m.Level = s[:i], lvl
		}
	}
	m.Text = strings.TrimSpace(m.Text)
	if m.Text == "" {
		return Message{}, fmt.Errorf("preview: empty toast message %q", s)
	}
	return m, nil
}

// ParseMessages parses each entry with ParseMessage.
func ParseMessages(in []string) ([]Message, error) {
	out := make([]Message, 0, len(in))
	for _, s := range in {
		m, err := ParseMessage(s)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
