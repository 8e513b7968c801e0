package service

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
	digitPattern   = regexp.MustCompile(`\d+`)
	linkPattern    = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Common Indonesian function words dropped before similarity scoring.
var indonesianStopwords = toSet(strings.Fields(`
	ada adalah adanya agar akan akhirnya aku amat anda antara apa apabila apakah
	atau atas bagai bagaimana bagi bahkan bahwa banyak baru bawah beberapa begitu
	belum benar berbagai berikut bisa boleh bukan cara cukup dalam dan dapat dari
	daripada demikian di dia dengan dilakukan dimana diri ditemukan dua harus hal
	hanya hingga ia ingin ini itu jadi jika juga jumlah kalau kami kamu karena
	kata ke kembali kemudian kepada ketika kita lagi lain lalu lebih maka masih
	mampu mana masing melalui memang memiliki menjadi mereka merupakan mulai
	namun nanti oleh pada para pernah perlu pula saat saja salah sama sangat
	sebagai sebelum sedang sehingga sejak sekarang selain selalu seluruh semua
	sendiri seperti serta sesuai setelah setiap siapa suatu sudah supaya tanpa
	tapi telah tentang terhadap termasuk tersebut tetapi tidak untuk yaitu yakni
	yang
`))

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// CleanText normalizes a description for comparison: markup, case, digits,
// links, punctuation and stopwords are removed.
func CleanText(text string) string {
	text = htmlTagPattern.ReplaceAllString(text, " ")
	text = strings.ToLower(text)
	text = digitPattern.ReplaceAllString(text, "")
	text = linkPattern.ReplaceAllString(text, "")
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, text)

	words := strings.Fields(strings.TrimSpace(text))
	kept := words[:0]
	for _, w := range words {
		if _, stop := indonesianStopwords[w]; stop {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// tokenize lower-cases text and returns runs of two or more word characters.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// TFIDFCosine fits a smooth-idf, l2 normalized TF-IDF model on the two
// documents and returns the cosine similarity of their vectors.
func TFIDFCosine(a, b string) float64 {
	docs := [2]map[string]float64{termCounts(tokenize(a)), termCounts(tokenize(b))}
	if len(docs[0]) == 0 || len(docs[1]) == 0 {
		return 0
	}

	df := map[string]int{}
	for _, d := range docs {
		for term := range d {
			df[term]++
		}
	}
	const n = 2.0
	for _, d := range docs {
		var norm float64
		for term, tf := range d {
			w := tf * (math.Log((1+n)/(1+float64(df[term]))) + 1)
			d[term] = w
			norm += w * w
		}
		norm = math.Sqrt(norm)
		for term := range d {
			d[term] /= norm
		}
	}

	var dot float64
	for term, w := range docs[0] {
		dot += w * docs[1][term]
	}
	return dot
}

func termCounts(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
