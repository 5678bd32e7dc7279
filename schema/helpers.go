package schema

import (
	"path/filepath"
	"strings"
)

// NormalizeAuthor canonicalizes an author identifier: trims surrounding
// whitespace and collapses internal runs of whitespace to a single space.
// Identifiers are otherwise opaque; no case folding is applied because
// "van Dyke" and "Van Dyke" may be distinct cited entities.
func NormalizeAuthor(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// SplitAuthors splits a raw author-list cell on the given separator and
// normalizes each part. Empty parts (e.g. from trailing separators) are
// dropped, so a row may contribute zero authors.
func SplitAuthors(cell, sep string) []string {
	var authors []string
	for part := range strings.SplitSeq(cell, sep) {
		if a := NormalizeAuthor(part); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}

// DatasetLabel derives a display label from a dataset file path:
// the base name without its extension.
func DatasetLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
