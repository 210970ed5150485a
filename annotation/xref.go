// Package annotation rewrites GFF3 records for IGV: it replaces gene names by
// HGNC symbols and normalizes the feature type of Ensembl genes and
// transcripts.
package annotation

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSource is the database named by the cross-references that Patcher
// resolves.
const DefaultSource = "HGNC"

// DescriptionKey is the attribute that carries the cross-reference.
const DescriptionKey = "description"

// xrefMarker returns the text that introduces a cross-reference to source,
// as in "[Source:HGNC Symbol%3BAcc:HGNC:5]". "%3B" is an escaped ';'.
func xrefMarker(source string) string {
	return "[Source:" + source + " Symbol%3BAcc:"
}

// XrefID extracts the numeric accession of the cross-reference to source
// embedded in a description value. ok is false if the description does not
// refer to source. err is set if it does but the accession is not a number.
func XrefID(description, source string) (id int, ok bool, err error) {
	marker := xrefMarker(source)
	i := strings.Index(description, marker)
	if i < 0 {
		return 0, false, nil
	}
	acc := description[i+len(marker):]
	j := strings.IndexByte(acc, ']')
	if j < 0 {
		return 0, true, fmt.Errorf("unterminated cross-reference in %q", description)
	}
	acc = acc[:j]
	if k := strings.LastIndexByte(acc, ':'); k >= 0 {
		acc = acc[k+1:]
	}
	if id, err = strconv.Atoi(acc); err != nil {
		return 0, true, fmt.Errorf("cross-reference in %q: %v", description, err)
	}
	return id, true, nil
}
