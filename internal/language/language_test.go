package language

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{" EN ", "en"},
		{"eng", "en"},
		{"spanish", "es"},
		{"German", "de"},
		{"pt-BR", "pt"},
		{"all", "all"},
		{"en.*", "en.*"},
		{"", ""},
		{"not a language", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeListDedupes(t *testing.T) {
	got := NormalizeList([]string{"en", "eng", "ES", "", "spanish", "fr"})
	want := []string{"en", "es", "fr"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeList = %v, want %v", got, want)
	}
}

func TestParseCSV(t *testing.T) {
	got := ParseCSV("en, es ,de")
	want := []string{"en", "es", "de"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseCSV = %v, want %v", got, want)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"en", "English"},
		{"ja", "Japanese"},
		{"", "Unknown"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.input); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
