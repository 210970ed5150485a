package geneid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/igvgenome/encoding/genepred"
	"github.com/grailbio/igvgenome/hgnc"
)

// Source tells where a resolved symbol came from.
type Source int

const (
	// FromHGNC means the symbol is the approved HGNC symbol.
	FromHGNC Source = iota
	// FromAnnotation means the symbol is the GFF3 Name of a gene without
	// HGNC id.
	FromAnnotation
)

// StripNamespace removes a "<namespace>:" prefix such as "gene:" or
// "transcript:".
func StripNamespace(id string) string {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// NumericID parses the number that follows the letter prefix of a stable id,
// e.g. 141510 for "ENSG00000141510".
func NumericID(id string) (int64, error) {
	digits := strings.TrimLeftFunc(id, func(r rune) bool { return r < '0' || r > '9' })
	if i := strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		digits = digits[:i]
	}
	if digits == "" {
		return 0, fmt.Errorf("%s: no numeric part", id)
	}
	return strconv.ParseInt(digits, 10, 64)
}

// Symbol resolves a bare gene id, first through its HGNC id and then through
// its annotation name.
func (x *Index) Symbol(gene string, mapping *hgnc.Mapping) (string, Source, error) {
	if id, ok := x.HGNCID(gene); ok {
		if symbol, ok := mapping.Symbol(id); ok {
			return symbol, FromHGNC, nil
		}
	}
	if name, ok := x.Name(gene); ok {
		return name, FromAnnotation, nil
	}
	return "", 0, errors.E(errors.NotExist, fmt.Sprintf("gene %s: no symbol found", gene))
}

// Resolve converts a gff3ToGenePred record into the layout IGV expects: the
// transcript namespace is stripped, the gene id is replaced by its symbol,
// and the numeric part of the gene id becomes the leading column.
func Resolve(rec genepred.Record, x *Index, mapping *hgnc.Mapping) (genepred.IGVRecord, Source, error) {
	gene := strings.TrimSpace(StripNamespace(rec.Name2))
	symbol, src, err := x.Symbol(gene, mapping)
	if err != nil {
		return genepred.IGVRecord{}, 0, errors.E(fmt.Sprintf("transcript %s", rec.Name), err)
	}
	n, err := NumericID(gene)
	if err != nil {
		return genepred.IGVRecord{}, 0, errors.E(errors.Invalid, fmt.Sprintf("transcript %s", rec.Name), err)
	}
	rec.Name = StripNamespace(rec.Name)
	rec.Name2 = symbol
	return genepred.IGVRecord{GeneID: n, Record: rec}, src, nil
}

// ResolveStats counts the symbols by source.
type ResolveStats struct {
	HGNC    int
	NonHGNC int
}

// ResolveAll resolves every record. It stops at the first record that cannot
// be resolved: the index is expected to cover every gene of the annotation
// the table was converted from.
func ResolveAll(recs []genepred.Record, x *Index, mapping *hgnc.Mapping) ([]genepred.IGVRecord, ResolveStats, error) {
	log.Printf("modifying genePred file...")
	var stats ResolveStats
	out := make([]genepred.IGVRecord, 0, len(recs))
	for _, rec := range recs {
		r, src, err := Resolve(rec, x, mapping)
		if err != nil {
			return nil, stats, err
		}
		if src == FromHGNC {
			stats.HGNC++
		} else {
			stats.NonHGNC++
		}
		out = append(out, r)
	}
	log.Printf("\tgene names from %d hgnc genes and %d non hgnc genes were replaced", stats.HGNC, stats.NonHGNC)
	return out, stats, nil
}
