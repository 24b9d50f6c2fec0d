package model

import (
	"fmt"
	"strings"
)

// MatchMode задаёт, как сравниваются коды и адреса при поиске
type MatchMode string

const (
	// MatchSubstring ищет по вхождению подстроки: запрос "ab" находит код "xaby"
	MatchSubstring MatchMode = "substring"
	// MatchExact ищет только по точному совпадению
	MatchExact MatchMode = "exact"
)

func (m MatchMode) String() string {
	return string(m)
}

// Set реализует flag.Value
func (m *MatchMode) Set(value string) error {
	switch MatchMode(strings.ToLower(strings.TrimSpace(value))) {
	case MatchSubstring:
		*m = MatchSubstring
	case MatchExact:
		*m = MatchExact
	default:
		return fmt.Errorf("invalid match mode: %s", value)
	}
	return nil
}

func (m *MatchMode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

// Matches проверяет, подходит ли сохранённое значение под запрос
func (m MatchMode) Matches(stored, query string) bool {
	if m == MatchExact {
		return stored == query
	}
	return strings.Contains(stored, query)
}
