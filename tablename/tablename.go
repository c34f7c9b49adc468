// Package tablename derives the external relational table names that
// back a node or edge type. The algorithm is part of the external
// contract — it names real tables an ingestion source must match
// byte-for-byte — so it is reproduced here exactly rather than
// approximated.
package tablename

import (
	"crypto/md5" //nolint:gosec // naming contract, not a security boundary
	"fmt"
	"strings"
)

// Node returns the table name for a node type with the given label.
func Node(label string) string {
	return "node_" + stripUnderscores(label)
}

// Edge returns the table name for an edge type. If the naive
// concatenation of the three labels exceeds 40 characters, PostgreSQL's
// identifier length limit forces a truncated, hash-disambiguated form
// instead.
func Edge(srcLabel, edgeLabel, dstLabel string) string {
	naive := "edge_" + stripUnderscores(srcLabel) + stripUnderscores(edgeLabel) + stripUnderscores(dstLabel)
	if len(naive) <= 40 {
		return naive
	}

	sum := md5.Sum([]byte(naive))
	hash := fmt.Sprintf("%x", sum[:4])

	p1 := truncate(abbreviate(srcLabel), 10)
	p2 := truncate(abbreviate(edgeLabel), 10)
	p3 := truncate(abbreviate(dstLabel), 10)

	return "edge_" + hash + "_" + p1 + p2 + p3
}

func stripUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", "")
}

// abbreviate joins the first two characters of each underscore-separated
// word in s.
func abbreviate(s string) string {
	words := strings.Split(s, "_")
	var b strings.Builder
	for _, w := range words {
		b.WriteString(truncate(w, 2))
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
