package service

import (
	"fmt"

	"golang.org/x/text/language"
)

const (
	LocaleIndonesian = "id"
	LocaleEnglish    = "en"
)

var (
	supportedLocales = []string{LocaleIndonesian, LocaleEnglish}
	localeMatcher    = language.NewMatcher([]language.Tag{language.Indonesian, language.English})
)

type correctnessMessages struct {
	correct   string
	incorrect string
}

var messagesByLocale = map[string]correctnessMessages{
	LocaleIndonesian: {
		correct:   "Pertanyaan %s terjawab benar",
		incorrect: "Pertanyaan %s terjawab salah",
	},
	LocaleEnglish: {
		correct:   "%s question answered correctly",
		incorrect: "%s question answered incorrectly",
	},
}

// NormalizeLocale maps unknown locales to Indonesian.
func NormalizeLocale(locale string) string {
	if _, ok := messagesByLocale[locale]; ok {
		return locale
	}
	return LocaleIndonesian
}

// NegotiateLocale picks a supported locale from an Accept-Language header,
// falling back when the header is empty or nothing matches.
func NegotiateLocale(acceptLanguage, fallback string) string {
	fallback = NormalizeLocale(fallback)
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return supportedLocales[idx]
}

func CorrectnessMessage(locale, level string, correct bool) string {
	m := messagesByLocale[NormalizeLocale(locale)]
	if correct {
		return fmt.Sprintf(m.correct, level)
	}
	return fmt.Sprintf(m.incorrect, level)
}
