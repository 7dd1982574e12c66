package pagination

import "testing"

func TestNewPageableClampsInput(t *testing.T) {
	cases := []struct {
		name           string
		page, size     int
		wantPage, want int
	}{
		{"defaults", -1, 0, 0, DefaultSize},
		{"as given", 2, 25, 2, 25},
		{"capped size", 0, 1000, 0, MaxSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPageable(tc.page, tc.size)
			if p.Page != tc.wantPage || p.Size != tc.want {
				t.Fatalf("got page=%d size=%d, want page=%d size=%d", p.Page, p.Size, tc.wantPage, tc.want)
			}
		})
	}
}

func TestPageableOffset(t *testing.T) {
	p := NewPageable(3, 20)
	if got := p.Offset(); got != 60 {
		t.Fatalf("offset = %d, want 60", got)
	}
}

func TestNewPageTotalPages(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		total int64
		want  int
	}{
		{"empty", 10, 0, 0},
		{"partial page", 10, 2, 1},
		{"exact multiple", 10, 20, 2},
		{"one over", 10, 21, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPage([]int{}, NewPageable(0, tc.size), tc.total)
			if p.TotalPages != tc.want {
				t.Fatalf("totalPages = %d, want %d", p.TotalPages, tc.want)
			}
		})
	}
}

func TestNewPageNeverReturnsNilContent(t *testing.T) {
	p := NewPage[string](nil, NewPageable(0, 10), 0)
	if p.Content == nil {
		t.Fatal("content should be an empty slice, not nil")
	}
}
