package annotation

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/igvgenome/encoding/gff3"
	"github.com/grailbio/igvgenome/hgnc"
)

// NameKey is the attribute IGV displays as the feature name.
const NameKey = "Name"

// Outcome is the result of patching one record.
type Outcome int

const (
	// Unmodified means the record has no cross-reference.
	Unmodified Outcome = iota
	// Modified means Name was set to the HGNC symbol.
	Modified
	// Unresolved means the record has a cross-reference, but its id is
	// malformed or missing from the mapping. The record is left unchanged.
	Unresolved
)

// Patcher replaces the Name attribute of records that carry an HGNC
// cross-reference by the approved HGNC symbol.
type Patcher struct {
	Mapping *hgnc.Mapping
	// Source is the database named in the cross-reference. Defaults to
	// DefaultSource.
	Source string
}

func (p *Patcher) source() string {
	if p.Source == "" {
		return DefaultSource
	}
	return p.Source
}

// Patch rewrites rec.Attributes in place. Patching a record twice yields the
// same attributes as patching it once.
func (p *Patcher) Patch(rec *gff3.Record) Outcome {
	attrs := gff3.ParseAttributes(rec.Attributes)
	desc, ok := attrs.Get(DescriptionKey)
	if !ok {
		return Unmodified
	}
	id, ok, err := XrefID(desc, p.source())
	if !ok {
		return Unmodified
	}
	if err != nil {
		log.Error.Printf("Warning: %s:%d: %v", rec.Seqid, rec.Start, err)
		return Unresolved
	}
	symbol, ok := p.Mapping.Symbol(id)
	if !ok {
		log.Error.Printf("Warning: %s id %d not found in %s file!", p.source(), id, p.source())
		return Unresolved
	}
	rec.Attributes = attrs.Set(NameKey, symbol).String()
	return Modified
}

// PatchStats counts the lines seen by PatchFile.
type PatchStats struct {
	// Comments is the number of header lines kept.
	Comments int
	// Modified is the number of records whose Name was set.
	Modified int
	// Unmodified is the number of records left as-is, including the
	// unresolved ones.
	Unmodified int
	// Unresolved is the number of records whose cross-reference could not be
	// resolved.
	Unresolved int
	// Ignored is the number of dropped terminator lines.
	Ignored int
}

// PatchFile patches every record of f.
func (p *Patcher) PatchFile(f *gff3.File) PatchStats {
	stats := PatchStats{Comments: len(f.Header), Ignored: f.Ignored}
	for i := range f.Records {
		switch p.Patch(&f.Records[i]) {
		case Modified:
			stats.Modified++
		case Unresolved:
			stats.Unresolved++
			stats.Unmodified++
		default:
			stats.Unmodified++
		}
	}
	return stats
}

// Log prints the counters the way the command-line tools report them.
func (s PatchStats) Log() {
	log.Printf("\tcomment lines: %d", s.Comments)
	log.Printf("\tunmodified lines: %d", s.Unmodified)
	log.Printf("\tmodified lines: %d", s.Modified)
	log.Printf("\tunresolved lines: %d", s.Unresolved)
	log.Printf("\tignored lines: %d", s.Ignored)
}
