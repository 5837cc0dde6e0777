package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name     string
		total    int64
		page     int
		perPage  int
		wantTP   int
		wantNext bool
		wantPrev bool
	}{
		{"halaman pertama dari tiga", 50, 1, 20, 3, true, false},
		{"halaman tengah", 50, 2, 20, 3, true, true},
		{"halaman terakhir", 50, 3, 20, 3, false, true},
		{"kosong tetap satu halaman", 0, 1, 20, 1, false, false},
		{"pas satu halaman", 20, 1, 20, 1, false, false},
		{"input aneh dinormalisasi", 10, 0, 0, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.wantTP {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantTP)
			}
			if p.HasNext != tc.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tc.wantNext)
			}
			if p.HasPrev != tc.wantPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tc.wantPrev)
			}
		})
	}
}
