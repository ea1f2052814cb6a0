package utils

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// NameProcessor provides utilities for cleaning up person names coming
// from external providers and user input
type NameProcessor struct {
	logger *zap.Logger
}

// NewNameProcessor creates a new NameProcessor
func NewNameProcessor(logger *zap.Logger) *NameProcessor {
	return &NameProcessor{
		logger: logger,
	}
}

// Split breaks a display name into first and last parts. Middle names
// collapse into the gap: the last whitespace-separated token is the last
// name, the first token is the first name.
func (np *NameProcessor) Split(name string) (first, last string) {
	parts := strings.Fields(np.SanitizeUTF8(name))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[len(parts)-1]
	}
}

// SanitizeUTF8 ensures the string contains only valid UTF-8 characters
func (np *NameProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	result := make([]rune, 0, len(text))
	for i, r := range text {
		if r == utf8.RuneError {
			_, size := utf8.DecodeRuneInString(text[i:])
			if size == 1 {
				// Skip invalid UTF-8 sequences
				continue
			}
		}
		result = append(result, r)
	}

	np.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(string(result))))

	return string(result)
}
