package validation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lareferencia/harvester/pkg/metadata"
)

// parseDoc builds a document from raw XOAI metadata.
func parseDoc(t *testing.T, raw string) *metadata.Document {
	t.Helper()
	doc, err := metadata.Parse("oai:test:1", raw)
	require.NoError(t, err)
	return doc
}

// docWithFields builds a document with dc.title and dc.language occurrences.
func docWithFields(t *testing.T, titles, languages []string) *metadata.Document {
	t.Helper()
	doc := parseDoc(t, `<metadata/>`)
	for _, v := range titles {
		doc.AddFieldOccurrence("dc.title", v)
	}
	for _, v := range languages {
		doc.AddFieldOccurrence("dc.language", v)
	}
	return doc
}
