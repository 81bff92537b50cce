package profile

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var cardinals = [...]string{"two", "three", "four", "five", "six", "seven", "eight", "nine"}

// BackerPhrase bands a backer count for display: none, one, a spelled-out
// cardinal up to nine, then a locale-grouped number.
func BackerPhrase(count int) string {
	switch {
	case count <= 0:
		return PhraseNoBackers
	case count == 1:
		return PhraseOneBacker
	case count <= 9:
		return cardinals[count-2] + " " + PhraseBackersSuffix
	default:
		return message.NewPrinter(language.English).Sprintf("%d %s", count, PhraseBackersSuffix)
	}
}
