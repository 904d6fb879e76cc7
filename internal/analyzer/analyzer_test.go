package analyzer

import (
	"reflect"
	"testing"
)

func TestAnalyzeCounts(t *testing.T) {
	stats := Analyze("Satu dua tiga. Empat lima.")

	if stats.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", stats.WordCount)
	}
	if stats.SentenceCount != 2 {
		t.Errorf("SentenceCount = %d, want 2", stats.SentenceCount)
	}
	if stats.AvgWordsPerSentence != 2.5 {
		t.Errorf("AvgWordsPerSentence = %f, want 2.5", stats.AvgWordsPerSentence)
	}
}

func TestAnalyzeRuneCounts(t *testing.T) {
	stats := Analyze("Kopi enak ☕")

	if stats.CharCount != 11 {
		t.Errorf("CharCount = %d, want 11", stats.CharCount)
	}
	if stats.CharCountNoSpaces != 9 {
		t.Errorf("CharCountNoSpaces = %d, want 9", stats.CharCountNoSpaces)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if got := Analyze("   "); !reflect.DeepEqual(got, Stats{}) {
		t.Errorf("Analyze(whitespace) = %+v, want zero Stats", got)
	}
}

func TestAnalyzeTextWithoutTerminator(t *testing.T) {
	stats := Analyze("Tanpa titik di akhir")
	if stats.SentenceCount != 1 {
		t.Errorf("SentenceCount = %d, want 1", stats.SentenceCount)
	}
}

func TestAnalyzeReadabilityOrdering(t *testing.T) {
	simple := Analyze("Enak. Murah. Praktis.")
	complex := Analyze("Perusahaan kami senantiasa berkomitmen menghadirkan pengalaman kuliner berkualitas internasional melalui pemberdayaan petani lokal berkelanjutan dan proses produksi yang memperhatikan keberlanjutan lingkungan secara menyeluruh.")

	if simple.ReadabilityScore <= complex.ReadabilityScore {
		t.Errorf("simple copy scored %f, complex scored %f, want simple > complex",
			simple.ReadabilityScore, complex.ReadabilityScore)
	}
	if simple.ReadabilityLabel == "" || complex.ReadabilityLabel == "" {
		t.Error("readability labels must not be empty for non-empty text")
	}
}

func TestToneSignals(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			"casual markers",
			"Yuk cobain keripik kami, dijamin nagih banget.",
			[]string{"santai"},
		},
		{
			"formal question",
			"Apakah Anda mencari oleh-oleh khas Bandung?",
			[]string{"formal", "mengajak interaksi"},
		},
		{
			"sales push",
			"Promo spesial! Beli sekarang juga! Stok terbatas!",
			[]string{"persuasif", "antusias"},
		},
		{
			"word boundary",
			"Pemandangan bandara cukup indah.",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text).ToneSignals
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ToneSignals = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExtractHashtags(t *testing.T) {
	stats := Analyze("Cemilan kekinian #KeripikSingkong #kulinerbandung #KeripikSingkong enak!")

	want := []string{"#KeripikSingkong", "#kulinerbandung"}
	if !reflect.DeepEqual(stats.Hashtags, want) {
		t.Errorf("Hashtags = %v, want %v", stats.Hashtags, want)
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"enak", 2},
		{"murah", 2},
		{"keripik", 3},
		{"singkong", 2},
		{"xyz", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := countSyllables(tt.word); got != tt.expected {
				t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.expected)
			}
		})
	}
}
