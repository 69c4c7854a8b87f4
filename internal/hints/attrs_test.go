package hints

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseAttrs(t *testing.T) {
	cases := []struct {
		name string
		line string
		want map[string]string
	}{
		{
			name: "single pair",
			line: `<!-- @jump-links title="In This Guide" -->`,
			want: map[string]string{"title": "In This Guide"},
		},
		{
			name: "multiple pairs",
			line: `<!-- @cta url="https://example.com/buy" text="Buy Now" sponsored="true" -->`,
			want: map[string]string{"url": "https://example.com/buy", "text": "Buy Now", "sponsored": "true"},
		},
		{
			name: "empty value kept",
			line: `<!-- @data-lab title="" columns="A,B" -->`,
			want: map[string]string{"title": "", "columns": "A,B"},
		},
		{
			name: "no pairs",
			line: `<!-- @protip -->`,
			want: map[string]string{},
		},
		{
			name: "unterminated value ignored",
			line: `<!-- @cta url="https://broken -->`,
			want: map[string]string{},
		},
		{
			name: "duplicate keys keep last",
			line: `a="1" a="2"`,
			want: map[string]string{"a": "2"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseAttrs(tc.line)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("parseAttrs(%q) mismatch (-want +got):\n%s", tc.line, diff)
			}
		})
	}
}
