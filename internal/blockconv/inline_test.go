package blockconv

import "testing"

func TestFormatInline(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bold", "some **bold** text", "some <strong>bold</strong> text"},
		{"italic", "some *italic* text", "some <em>italic</em> text"},
		{"code span", "run `go build` now", "run <code>go build</code> now"},
		{"link", "see [the docs](https://example.com)", `see <a href="https://example.com">the docs</a>`},
		{"bold and italic co-occur", "**a** and *b*", "<strong>a</strong> and <em>b</em>"},
		{"bold inside link text", "[**lead**](https://x.test)", `<a href="https://x.test"><strong>lead</strong></a>`},
		{"unmatched bold left literal", "dangling ** marker", "dangling ** marker"},
		{"unmatched backtick left literal", "odd ` tick", "odd ` tick"},
		{"plain text untouched", "nothing special here", "nothing special here"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatInline(tc.input); got != tc.want {
				t.Fatalf("FormatInline(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
