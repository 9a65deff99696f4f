package handle_test

import (
	"testing"

	"github.com/MichalMitros/cartlinker/internal/handle"
	"github.com/stretchr/testify/assert"
)

func TestUnitParse(t *testing.T) {
	tests := map[string]struct {
		input       string
		wantHandles []string
		wantDropped []string
	}{
		"product urls and barcodes": {
			input:       "https://x/products/abc?variant=1\n1234567890123\nnotaurl",
			wantHandles: []string{"abc", "1234567890123"},
			wantDropped: []string{"notaurl"},
		},
		"twelve digits are not a barcode": {
			input:       "https://x/products/abc?variant=1\n123456789012\nnotaurl",
			wantHandles: []string{"abc"},
			wantDropped: []string{"123456789012", "notaurl"},
		},
		"fourteen digits": {
			input:       "12345678901234",
			wantHandles: []string{"12345678901234"},
		},
		"fifteen digits": {
			input:       "123456789012345",
			wantHandles: []string{},
			wantDropped: []string{"123456789012345"},
		},
		"truncates at query, fragment and ampersand": {
			input:       "https://x/products/a#top\nhttps://x/products/b&x=1\n/products/c?y=2",
			wantHandles: []string{"a", "b", "c"},
		},
		"collection product url": {
			input:       "https://chiikawamarket.jp/collections/new/products/mug-red",
			wantHandles: []string{"mug-red"},
		},
		"trims lines and skips empty ones": {
			input:       "\n   \n  https://x/products/abc  \r\n\t\n",
			wantHandles: []string{"abc"},
		},
		"percent-encoded handle is kept as is": {
			input:       "https://chiikawamarket.jp/products/%E3%81%A1%E3%81%84?variant=1",
			wantHandles: []string{"%E3%81%A1%E3%81%84"},
		},
		"raw unicode handle": {
			input:       "https://chiikawamarket.jp/products/ちいかわ-マグ",
			wantHandles: []string{"ちいかわ-マグ"},
		},
		"keeps duplicates": {
			input:       "https://x/products/abc\nhttps://y/products/abc",
			wantHandles: []string{"abc", "abc"},
		},
		"empty handle after products segment": {
			input:       "https://x/products/?variant=1",
			wantHandles: []string{},
			wantDropped: []string{"https://x/products/?variant=1"},
		},
		"empty input": {
			input:       "",
			wantHandles: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			handles, dropped := handle.ParseReport(tt.input)

			assert.Equal(t, tt.wantHandles, handles, "should return correct handles")
			assert.Equal(t, tt.wantDropped, dropped, "should return correct dropped lines")
			assert.Equal(t, tt.wantHandles, handle.Parse(tt.input), "Parse should match ParseReport")
		})
	}
}

func TestUnitParseNeverReturnsUnrecognizedLines(t *testing.T) {
	lines := []string{"hello", "https://x/collections/a", "12345", "abc1234567890123", "products/abc"}

	for _, line := range lines {
		assert.Empty(t, handle.Parse(line), "line %q shouldn't produce a handle", line)
	}
}

func TestUnitFromHref(t *testing.T) {
	tests := map[string]struct {
		href   string
		want   string
		wantOK bool
	}{
		"relative":        {href: "/products/usagi-mug", want: "usagi-mug", wantOK: true},
		"absolute":        {href: "https://chiikawamarket.jp/products/usagi-mug?v=1", want: "usagi-mug", wantOK: true},
		"nested segments": {href: "/products/a/products/b", want: "a", wantOK: true},
		"no segment":      {href: "/pages/campaign"},
		"empty handle":    {href: "/products/#reviews"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := handle.FromHref(tt.href)

			assert.Equal(t, tt.wantOK, ok, "should return correct ok flag")
			assert.Equal(t, tt.want, got, "should return correct handle")
		})
	}
}
