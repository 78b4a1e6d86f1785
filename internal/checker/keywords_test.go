package checker

import (
	"reflect"
	"testing"

	"github.com/Suhas010/Framelytics/internal/model"
)

func TestTokenizeWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "punctuation dropped",
			text: "Drip lines, timers & valves!",
			want: []string{"drip", "lines", "timers", "valves"},
		},
		{
			name: "apostrophes kept",
			text: "the gardener's choice",
			want: []string{"the", "gardener's", "choice"},
		},
		{
			name: "unicode lowercasing",
			text: "Bewässerung im GARTEN",
			want: []string{"bewässerung", "im", "garten"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tokenizeWords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenizeWords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDeriveKeywords(t *testing.T) {
	t.Parallel()

	t.Run("explicit keywords meta wins", func(t *testing.T) {
		t.Parallel()
		nodes := []*model.Node{
			{Name: "keywords", Type: model.TypeMeta, MetaName: "keywords",
				MetaContent: "Irrigation, Drip Systems , timers"},
			{Name: "title", Type: "title", Text: "Something Else Entirely Unrelated"},
		}
		want := []string{"irrigation", "drip systems", "timers"}
		if got := deriveKeywords(nodes); !reflect.DeepEqual(got, want) {
			t.Errorf("deriveKeywords() = %v, want %v", got, want)
		}
	})

	t.Run("derived from title and h1", func(t *testing.T) {
		t.Parallel()
		nodes := []*model.Node{
			{Name: "title", Type: "title", Text: "Garden Irrigation for Busy People"},
			{Name: "main h1", Type: model.TypeHeading1, Text: "Watering Without the Work"},
		}
		// First three >3-character words from the title, then from the H1,
		// de-duplicated.
		want := []string{"garden", "irrigation", "busy", "watering", "without", "work"}
		if got := deriveKeywords(nodes); !reflect.DeepEqual(got, want) {
			t.Errorf("deriveKeywords() = %v, want %v", got, want)
		}
	})

	t.Run("no sources", func(t *testing.T) {
		t.Parallel()
		if got := deriveKeywords([]*model.Node{{Name: "div"}}); len(got) != 0 {
			t.Errorf("deriveKeywords() = %v, want none", got)
		}
	})
}

func TestContainsAnyKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		keywords []string
		want     bool
	}{
		{"match case-insensitive", "Best IRRIGATION guide", []string{"irrigation"}, true},
		{"no match", "A page about cooking", []string{"irrigation"}, false},
		{"vacuous with no keywords", "anything at all", nil, true},
		{"substring match", "micro-irrigation systems", []string{"irrigation"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := containsAnyKeyword(tt.text, tt.keywords); got != tt.want {
				t.Errorf("containsAnyKeyword(%q, %v) = %v, want %v", tt.text, tt.keywords, got, tt.want)
			}
		})
	}
}
