package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Robotik Club Bandung", "robotik-club-bandung"},
		{"  UKM  Fotografi!  ", "ukm-fotografi"},
		{"Klub--Catur", "klub-catur"},
		{"123 Club", "123-club"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
