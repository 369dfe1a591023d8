package fuzzy

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"Work", "work", 0},
		{"café", "cafe", 0},
		{"tiếng", "tieng", 0},
	}
	for _, tt := range tests {
		if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query, text string
		want        bool
	}{
		{"shop", "shopping list", true},
		{"shoping", "shopping", true},
		{"xyz", "groceries", false},
	}
	for _, tt := range tests {
		if got := FuzzyMatch(tt.query, tt.text, 1); got != tt.want {
			t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tt.query, tt.text, got, tt.want)
		}
	}
}

func TestRank(t *testing.T) {
	tags := []string{"workout", "work", "homework", "wrok-notes", "travel", "Work Trips"}

	got := Rank("work", tags, 0)
	want := []string{"work", "workout", "Work Trips", "homework"}
	if len(got) < len(want) {
		t.Fatalf("expected at least %d matches, got %+v", len(want), got)
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Fatalf("position %d: expected %q, got %+v", i, w, got)
		}
	}
	for _, m := range got {
		if m.Text == "travel" {
			t.Errorf("unrelated tag ranked: %+v", got)
		}
	}

	if limited := Rank("work", tags, 2); len(limited) != 2 {
		t.Errorf("expected limit to apply, got %d", len(limited))
	}
	if none := Rank("", tags, 0); len(none) != 0 {
		t.Errorf("empty query should match nothing, got %+v", none)
	}
}
