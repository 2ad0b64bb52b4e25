package pdf

import (
	"regexp"
	"unicode"
)

// Runs of 3+ letters count as word tokens. \p{L} keeps this locale-aware
// (accented characters included).
var reWordToken = regexp.MustCompile(`\p{L}{3,}`)

// wordTokenCount returns the number of alphabetic word tokens in text.
func wordTokenCount(text string) int {
	return len(reWordToken.FindAllStringIndex(text, -1))
}

// alnumRatio returns the ratio of alphanumeric runes to total runes.
// An empty string has ratio 0.
func alnumRatio(text string) float64 {
	var total, alnum int
	for _, r := range text {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alnum) / float64(total)
}

// acceptableQuality is the pure accept/reject predicate over extracted text:
// enough word tokens AND enough valid characters relative to noise.
func acceptableQuality(text string, minWords int, minRatio float64) bool {
	if text == "" {
		return false
	}
	if wordTokenCount(text) < minWords {
		return false
	}
	return alnumRatio(text) >= minRatio
}
