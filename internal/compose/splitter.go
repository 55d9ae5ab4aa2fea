package compose

import (
	"strings"
	"unicode/utf8"
)

// Caption tokens are joined by this exact delimiter in story captions.
const captionDelimiter = " | "

// storyLineBudget is the soft per-line character target when a caption is
// split for two-line story posts.
const storyLineBudget = 47

// SplitCaption distributes the pipe-delimited tokens of a story caption across
// two lines for two-line story posts. Tokens keep their original order: the
// first line is filled greedily up to a 47-character budget and every token
// after the first overflow goes to the second line. Tokens are never broken,
// so a caption opening with a token longer than the budget still carries it
// whole on the first line. The lines are joined with "\n"; a caption that fits
// on one line is returned as-is after trimming.
func SplitCaption(caption string) string {
	tokens := strings.Split(caption, captionDelimiter)

	var first, second string
	for _, tok := range tokens {
		prospective := utf8.RuneCountInString(first) + utf8.RuneCountInString(tok) + len(captionDelimiter)
		switch {
		case first == "":
			first = tok
		case second == "" && prospective <= storyLineBudget:
			first += captionDelimiter + tok
		case second == "":
			second = tok
		default:
			second += captionDelimiter + tok
		}
	}

	first = strings.TrimSpace(first)
	if strings.HasSuffix(first, "|") {
		first = strings.TrimSpace(strings.TrimSuffix(first, "|"))
	}
	second = strings.TrimSpace(second)

	if second == "" {
		return first
	}
	return first + "\n" + second
}
