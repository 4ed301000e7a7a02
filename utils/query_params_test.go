package utils

import "testing"

func TestCleanParams_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   map[string]any
		want string
	}{
		{
			name: "nil map",
			in:   nil,
			want: "",
		},
		{
			name: "scalars encode",
			in:   map[string]any{"page": 2, "limit": 10, "q": "go"},
			want: "limit=10&page=2&q=go",
		},
		{
			name: "nil and empty string dropped",
			in:   map[string]any{"a": nil, "b": "", "c": "keep"},
			want: "c=keep",
		},
		{
			name: "zero int kept",
			in:   map[string]any{"page": 0},
			want: "page=0",
		},
		{
			name: "bool formats",
			in:   map[string]any{"featured": true},
			want: "featured=true",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CleanParams(tt.in).Encode(); got != tt.want {
				t.Fatalf("got=%q want %q", got, tt.want)
			}
		})
	}
}

func TestAppendQuery_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		in   map[string]any
		want string
	}{
		{
			name: "no params returns url unchanged",
			url:  "https://api.example.com/projects",
			in:   nil,
			want: "https://api.example.com/projects",
		},
		{
			name: "appends to bare url",
			url:  "https://api.example.com/projects",
			in:   map[string]any{"page": 1},
			want: "https://api.example.com/projects?page=1",
		},
		{
			name: "merges with existing query",
			url:  "https://api.example.com/projects?sort=asc",
			in:   map[string]any{"page": 1},
			want: "https://api.example.com/projects?page=1&sort=asc",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := AppendQuery(tt.url, CleanParams(tt.in)); got != tt.want {
				t.Fatalf("got=%q want %q", got, tt.want)
			}
		})
	}
}
