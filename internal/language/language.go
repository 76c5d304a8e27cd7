package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize converts a language code or English language name to an ISO 639-1
// style code suitable for yt-dlp's --sub-langs. Returns the empty string for
// unrecognized input. Wildcards ("all", "en.*") pass through untouched since
// yt-dlp interprets them itself.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if code == "all" || strings.ContainsAny(code, ".*") {
		return code
	}
	tag, err := language.Parse(code)
	if err != nil {
		if t, ok := byEnglishName(code); ok {
			tag = t
		} else {
			return ""
		}
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}

// NormalizeList normalizes every entry, dropping blanks, unrecognized values,
// and duplicates while preserving order.
func NormalizeList(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		normalized := Normalize(code)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

// ParseCSV splits a comma separated language list and normalizes it.
func ParseCSV(value string) []string {
	return NormalizeList(strings.Split(value, ","))
}

// DisplayName returns a human-readable English name for a language code.
// Returns the uppercased input when the code is unrecognized.
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Unknown"
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return strings.ToUpper(trimmed)
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(trimmed)
}

// byEnglishName resolves full word forms like "spanish" by scanning the
// display catalog for supported bases.
func byEnglishName(word string) (language.Tag, bool) {
	for _, tag := range commonTags {
		if strings.EqualFold(display.English.Tags().Name(tag), word) {
			return tag, true
		}
	}
	return language.Und, false
}

var commonTags = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Italian,
	language.Portuguese,
	language.Japanese,
	language.Korean,
	language.Chinese,
	language.Russian,
	language.Arabic,
	language.Hindi,
	language.Dutch,
	language.Polish,
	language.Swedish,
	language.Danish,
	language.Norwegian,
	language.Finnish,
	language.Turkish,
	language.Ukrainian,
}
