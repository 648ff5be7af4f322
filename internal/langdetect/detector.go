// Package langdetect classifies the dominant natural language of article
// text. The "unknown" outcome is a first-class result, not an error.
package langdetect

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Unknown is returned whenever the text cannot be classified.
const Unknown = "unknown"

// MinTextLength is the shortest input worth classifying, in runes.
// Shorter samples produce unreliable guesses, so the model is not invoked.
const MinTextLength = 20

type Detector struct{}

func New() *Detector { return &Detector{} }

// Detect returns the ISO 639-1 code of the text's dominant language, or
// Unknown for empty, short, or ambiguous input.
func (d *Detector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < MinTextLength {
		return Unknown
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return Unknown
	}
	code := whatlanggo.LangToStringShort(info.Lang)
	if code == "" {
		return Unknown
	}
	return code
}
