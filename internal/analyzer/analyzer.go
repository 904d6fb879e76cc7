// Package analyzer computes local statistics for generated copy: length
// counts, a readability estimate, tone signals, and hashtags. Everything
// here is heuristic and runs without remote calls.
package analyzer

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Stats struct {
	WordCount           int      `json:"word_count"`
	CharCount           int      `json:"char_count"`
	CharCountNoSpaces   int      `json:"char_count_no_spaces"`
	SentenceCount       int      `json:"sentence_count"`
	AvgWordsPerSentence float64  `json:"avg_words_per_sentence"`
	ReadabilityScore    float64  `json:"readability_score"`
	ReadabilityLabel    string   `json:"readability_label"`
	ToneSignals         []string `json:"tone_signals"`
	Hashtags            []string `json:"hashtags"`
}

var (
	sentenceEnd    = regexp.MustCompile(`[.!?]+`)
	hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
)

var toneMarkers = []struct {
	signal  string
	markers []string
}{
	{"santai", []string{"kamu", "banget", "yuk", "nih", "deh", "kok", "cobain"}},
	{"formal", []string{"anda", "silakan", "kami menyediakan"}},
	{"persuasif", []string{"beli", "pesan", "order", "dapatkan", "promo", "jangan lewatkan"}},
}

// Analyze returns statistics for one piece of copy. Empty input yields the
// zero Stats.
func Analyze(text string) Stats {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Stats{}
	}

	words := strings.Fields(trimmed)
	sentences := countSentences(trimmed)

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	avgWords := float64(len(words)) / float64(sentences)
	avgSyllables := float64(syllables) / float64(len(words))
	score := readabilityScore(avgWords, avgSyllables)

	return Stats{
		WordCount:           len(words),
		CharCount:           utf8.RuneCountInString(trimmed),
		CharCountNoSpaces:   countNonSpace(trimmed),
		SentenceCount:       sentences,
		AvgWordsPerSentence: math.Round(avgWords*10) / 10,
		ReadabilityScore:    math.Round(score*10) / 10,
		ReadabilityLabel:    readabilityLabel(score),
		ToneSignals:         toneSignals(trimmed),
		Hashtags:            extractHashtags(trimmed),
	}
}

func countNonSpace(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

func countSentences(text string) int {
	count := 0
	for _, part := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

// countSyllables approximates Indonesian syllables as vowel groups.
func countSyllables(word string) int {
	count := 0
	prevVowel := false
	for _, r := range strings.ToLower(word) {
		isVowel := strings.ContainsRune("aiueo", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if count == 0 {
		count = 1
	}
	return count
}

// readabilityScore maps sentence and word complexity onto a 0-100 scale.
// Indonesian words carry more syllables than English ones, so the weights
// are gentler than the classic Flesch coefficients.
func readabilityScore(avgWordsPerSentence, avgSyllablesPerWord float64) float64 {
	score := 130 - 2*avgWordsPerSentence - 22*avgSyllablesPerWord
	return math.Max(0, math.Min(100, score))
}

func readabilityLabel(score float64) string {
	switch {
	case score >= 80:
		return "sangat mudah dibaca"
	case score >= 60:
		return "mudah dibaca"
	case score >= 40:
		return "cukup mudah dibaca"
	case score >= 20:
		return "agak sulit dibaca"
	default:
		return "sulit dibaca"
	}
}

func toneSignals(text string) []string {
	lower := strings.ToLower(text)
	tokens := tokenize(lower)

	var signals []string
	for _, tm := range toneMarkers {
		for _, marker := range tm.markers {
			if hasMarker(lower, tokens, marker) {
				signals = append(signals, tm.signal)
				break
			}
		}
	}
	if strings.Count(text, "!") >= 2 {
		signals = append(signals, "antusias")
	}
	if strings.Contains(text, "?") {
		signals = append(signals, "mengajak interaksi")
	}
	return signals
}

// hasMarker matches multi-word markers as substrings and single words as
// whole tokens, so "anda" does not fire inside "bandara".
func hasMarker(lower string, tokens []string, marker string) bool {
	if strings.Contains(marker, " ") {
		return strings.Contains(lower, marker)
	}
	for _, tok := range tokens {
		if tok == marker {
			return true
		}
	}
	return false
}

func tokenize(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func extractHashtags(text string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, m := range hashtagPattern.FindAllString(text, -1) {
		key := strings.ToLower(m)
		if !seen[key] {
			seen[key] = true
			tags = append(tags, m)
		}
	}
	return tags
}
