// Package gff3 reads and writes GFF3 annotation files
// (http://www.sequenceontology.org/gff3.shtml) and sorts their records in
// contig order.
package gff3

import (
	"strconv"
	"strings"
)

// Record is one feature line of a GFF3 file. Start and End are 1-based and
// inclusive.
type Record struct {
	Seqid      string
	Source     string
	Type       string
	Start      int
	End        int
	Score      string
	Strand     string
	Phase      string
	Attributes string
}

// String formats the record as a tab-separated line without the trailing
// newline.
func (r *Record) String() string {
	return strings.Join([]string{
		r.Seqid,
		r.Source,
		r.Type,
		strconv.Itoa(r.Start),
		strconv.Itoa(r.End),
		r.Score,
		r.Strand,
		r.Phase,
		r.Attributes,
	}, "\t")
}

// Attribute is one tag=value entry of the attributes column.
type Attribute struct {
	Key   string
	Value string
	// bare is set for entries without '='. They are kept as-is so that the
	// column can be formatted back unchanged.
	bare bool
}

// Attributes is the ordered list of entries of the ninth column.
type Attributes []Attribute

// ParseAttributes splits a ';'-separated attributes column. Empty entries
// and entries without '=' are preserved.
func ParseAttributes(s string) Attributes {
	if s == "" {
		return nil
	}
	entries := strings.Split(s, ";")
	attrs := make(Attributes, len(entries))
	for i, e := range entries {
		if j := strings.IndexByte(e, '='); j >= 0 {
			attrs[i] = Attribute{Key: e[:j], Value: e[j+1:]}
		} else {
			attrs[i] = Attribute{Key: e, bare: true}
		}
	}
	return attrs
}

// Get returns the value of the first entry with the given key.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if !attr.bare && attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Set overwrites the value of the first entry with the given key, or appends
// a new entry if there is none.
func (a Attributes) Set(key, value string) Attributes {
	for i := range a {
		if !a[i].bare && a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attribute{Key: key, Value: value})
}

// String joins the entries back into an attributes column.
func (a Attributes) String() string {
	var b strings.Builder
	for i, attr := range a {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(attr.Key)
		if !attr.bare {
			b.WriteByte('=')
			b.WriteString(attr.Value)
		}
	}
	return b.String()
}
