package ident_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/corbinhal/dictgraph/internal/ident"
	"github.com/stretchr/testify/assert"
)

// TestToLowerSnakeCanonicalExamples tests representative relation-name conversions.
func TestToLowerSnakeCanonicalExamples(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "all-caps to lowercase", input: "WORKS_AT", want: "works_at"},
		{name: "simple all-caps", input: "KNOWS", want: "knows"},
		{name: "acronym boundary", input: "HTTPProxy", want: "http_proxy"},
		{name: "CamelCase split", input: "CreatedBy", want: "created_by"},
		{name: "trailing acronym", input: "UserID", want: "user_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ident.ToLowerSnake(tt.input)
			assert.Equal(t, tt.want, got, "ToLowerSnake(%q)", tt.input)
		})
	}
}

// TestToLowerSnake_EdgeCases tests additional edge cases.
func TestToLowerSnake_EdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase", input: "a", want: "a"},
		{name: "single uppercase", input: "A", want: "a"},
		{name: "two-char acronym", input: "ID", want: "id"},
		{name: "leading acronym", input: "XMLParser", want: "xml_parser"},
		{name: "trailing acronym lc", input: "parseXML", want: "parse_xml"},
		{name: "digits and letters", input: "ABC123DEF", want: "abc_123_def"},
		{name: "acronym plus digit", input: "HTTP2Server", want: "http_2_server"},
		{name: "pre-snaked input", input: "ALREADY_SNAKE", want: "already_snake"},
		{name: "already lowercase snake", input: "already_snake", want: "already_snake"},
		{name: "leading underscores stripped", input: "__private", want: "private"},
		{name: "trailing underscores stripped", input: "trailing__", want: "trailing"},
		{name: "multiple underscores collapsed", input: "foo___bar", want: "foo_bar"},
		{name: "mixed case complex", input: "getHTTPResponseCode", want: "get_http_response_code"},
		{name: "single letter segments", input: "aBC", want: "a_bc"},
		{name: "consecutive digits", input: "foo123bar456", want: "foo_123_bar_456"},
		{name: "all digits", input: "123", want: "123"},
		{name: "all underscores", input: "___", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ident.ToLowerSnake(tt.input)
			assert.Equal(t, tt.want, got, "ToLowerSnake(%q)", tt.input)
		})
	}
}

// TestToLowerSnake_Unicode tests Unicode/rune support.
func TestToLowerSnake_Unicode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unicode with acronym", input: "ÅngströmID", want: "ångström_id"},
		{name: "unicode lowercase", input: "café", want: "café"},
		{name: "unicode uppercase", input: "CAFÉ", want: "café"},
		{name: "mixed unicode", input: "CaféOwner", want: "café_owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ident.ToLowerSnake(tt.input)
			assert.Equal(t, tt.want, got, "ToLowerSnake(%q)", tt.input)
		})
	}
}

// TestToLowerSnake_Idempotent verifies the idempotency property.
func TestToLowerSnake_Idempotent(t *testing.T) {
	inputs := []string{
		"WORKS_AT",
		"HTTPProxy",
		"CreatedBy",
		"UserID",
		"already_snake",
		"MixedCASE_Identifier",
		"ABC123DEF",
		"ÅngströmID",
		"",
		"a",
		"A",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := ident.ToLowerSnake(input)
			second := ident.ToLowerSnake(first)
			assert.Equal(t, first, second, "ToLowerSnake should be idempotent on %q", input)
		})
	}
}

// TestToLowerSnake_Idempotent_Random tests idempotency with random inputs.
func TestToLowerSnake_Idempotent_Random(t *testing.T) {
	r := rand.New(rand.NewSource(99)) //nolint:gosec // deterministic pseudo-randomness is fine in tests
	alphabet := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_")
	next := func() string {
		n := r.Intn(12) + 1
		var b strings.Builder
		b.Grow(n)
		for range n {
			b.WriteRune(alphabet[r.Intn(len(alphabet))])
		}
		return b.String()
	}

	for range 100 {
		src := next()
		first := ident.ToLowerSnake(src)
		second := ident.ToLowerSnake(first)
		assert.Equal(t, first, second, "ToLowerSnake should be idempotent on random input %q", src)
	}
}
