// Package geneid replaces the Ensembl gene ids of a genePred table by gene
// symbols. Symbols come from HGNC when the GFF3 annotation cross-references
// the gene to HGNC, and from the annotation's own Name attribute otherwise.
package geneid

import (
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/igvgenome/annotation"
	"github.com/grailbio/igvgenome/encoding/gff3"
	"github.com/grailbio/igvgenome/hgnc"
)

// GeneIDKey is the GFF3 attribute holding the bare Ensembl gene id.
const GeneIDKey = "gene_id"

// geneTypes are the GFF3 feature types that describe a gene.
var geneTypes = map[string]bool{
	"gene":                 true,
	"pseudogene":           true,
	"processed_transcript": true,
	"RNA":                  true,
}

// IsGeneType reports whether typ describes a gene, including the Ensembl
// biotype-specific types such as "ncRNA_gene" or "V_gene_segment".
func IsGeneType(typ string) bool {
	return geneTypes[typ] || strings.HasSuffix(typ, "_gene_segment") || strings.HasSuffix(typ, "_gene")
}

// Index maps Ensembl gene ids to HGNC ids, or to annotation names for genes
// without a valid HGNC cross-reference. A gene id is registered in exactly
// one of the two tables.
type Index struct {
	hgncIDs map[string]int
	names   map[string]string
}

// IndexStats counts the genes seen by BuildIndex.
type IndexStats struct {
	// HGNC is the number of genes mapped to an HGNC id.
	HGNC int
	// NonHGNC is the number of genes mapped to their annotation name.
	NonHGNC int
	// Unnamed is the number of genes with neither a valid HGNC
	// cross-reference nor a Name. They are not indexed.
	Unnamed int
}

// BuildIndex scans the gene records of an annotation. source names the
// cross-referenced database, usually annotation.DefaultSource. Only ids
// present in mapping count as valid cross-references.
func BuildIndex(records []gff3.Record, mapping *hgnc.Mapping, source string) (*Index, IndexStats) {
	log.Printf("generating ensembl gene id <-> %s mapping...", source)
	x := &Index{hgncIDs: map[string]int{}, names: map[string]string{}}
	var stats IndexStats
	for i := range records {
		r := &records[i]
		if !IsGeneType(r.Type) {
			continue
		}
		attrs := gff3.ParseAttributes(r.Attributes)
		gene, ok := attrs.Get(GeneIDKey)
		if !ok {
			continue
		}
		if id, ok := hgncID(attrs, mapping, source); ok {
			x.addHGNC(gene, id)
			stats.HGNC++
			continue
		}
		name, ok := attrs.Get(annotation.NameKey)
		if !ok {
			log.Debug.Printf("gene %s has neither a %s id nor a name", gene, source)
			stats.Unnamed++
			continue
		}
		x.addName(gene, name)
		stats.NonHGNC++
	}
	log.Printf("\t%d genes with %s ids mapped", stats.HGNC, source)
	log.Printf("\t%d genes without %s ids mapped", stats.NonHGNC, source)
	return x, stats
}

func hgncID(attrs gff3.Attributes, mapping *hgnc.Mapping, source string) (int, bool) {
	desc, ok := attrs.Get(annotation.DescriptionKey)
	if !ok {
		return 0, false
	}
	id, ok, err := annotation.XrefID(desc, source)
	if !ok || err != nil {
		return 0, false
	}
	if _, ok := mapping.Symbol(id); !ok {
		return 0, false
	}
	return id, true
}

func (x *Index) addHGNC(gene string, id int) {
	delete(x.names, gene)
	x.hgncIDs[gene] = id
}

func (x *Index) addName(gene, name string) {
	delete(x.hgncIDs, gene)
	x.names[gene] = name
}

// HGNCID returns the HGNC id registered for gene.
func (x *Index) HGNCID(gene string) (int, bool) {
	id, ok := x.hgncIDs[gene]
	return id, ok
}

// Name returns the annotation name registered for a gene without HGNC id.
func (x *Index) Name(gene string) (string, bool) {
	name, ok := x.names[gene]
	return name, ok
}
