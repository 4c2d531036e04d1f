// Package speech prepares NPC reply text for speech synthesis. LLM
// replies tend to carry roleplay markup (stage directions, markdown
// emphasis, intent tags) that sounds wrong when read aloud.
package speech

import (
	"regexp"
	"strings"
)

// silentUtterance is spoken in place of text that cleans down to nothing.
const silentUtterance = "..."

// Pre-compiled patterns, applied in order.
var (
	// *leans closer* style stage directions
	stageDirectionRe = regexp.MustCompile(`\*[^*]*\*`)

	// [intent=greeting] and other bracketed tags
	bracketTagRe = regexp.MustCompile(`\[[^\]]*\]`)

	// Markdown emphasis. RE2 has no backreferences, so bold and italic
	// markers get their own patterns.
	boldStarRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderscoreRe = regexp.MustCompile(`__(.*?)__`)
	italStarRe       = regexp.MustCompile(`\*(.*?)\*`)
	italUnderscoreRe = regexp.MustCompile(`_(.*?)_`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Clean strips markup from reply text and collapses whitespace. Empty
// input, or input that is nothing but markup, yields a short pause
// utterance rather than an empty string.
func Clean(text string) string {
	if text == "" {
		return silentUtterance
	}

	text = stageDirectionRe.ReplaceAllString(text, "")
	text = bracketTagRe.ReplaceAllString(text, "")
	text = boldStarRe.ReplaceAllString(text, "$1")
	text = boldUnderscoreRe.ReplaceAllString(text, "$1")
	text = italStarRe.ReplaceAllString(text, "$1")
	text = italUnderscoreRe.ReplaceAllString(text, "$1")
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	if text == "" {
		return silentUtterance
	}
	return text
}
