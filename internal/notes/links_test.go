package notes

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractLinkTitles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "no links", content: "plain text [not a link]", want: nil},
		{name: "single", content: "see [[Beta]]", want: []string{"Beta"}},
		{name: "several in order", content: "[[A]] then [[B]] and [[A]]", want: []string{"A", "B", "A"}},
		{name: "kept verbatim", content: "[[  Spaced Title ]]", want: []string{"  Spaced Title "}},
		{name: "empty brackets", content: "[[]]", want: []string{""}},
		{name: "first close wins", content: "[[a]]b]]", want: []string{"a"}},
		{name: "no nesting", content: "[[outer [[inner]] tail]]", want: []string{"outer [[inner"}},
		{name: "unterminated", content: "[[open", want: nil},
		{name: "extra open bracket", content: "[[[x]]", want: []string{"[x"}},
		{name: "does not span lines", content: "[[first\nsecond]] [[ok]]", want: []string{"ok"}},
		{name: "unicode", content: "ссылка на [[Заметка]]", want: []string{"Заметка"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := slices.Collect(ExtractLinkTitles(tt.content))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractLinkTitles(%q) mismatch (-want +got):\n%s", tt.content, diff)
			}
		})
	}
}

func TestExtractLinkTitles_Restartable(t *testing.T) {
	t.Parallel()

	seq := ExtractLinkTitles("[[one]] [[two]]")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestExtractLinkTitles_EarlyStop(t *testing.T) {
	t.Parallel()

	var got []string
	for title := range ExtractLinkTitles("[[a]] [[b]] [[c]]") {
		got = append(got, title)
		if len(got) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
