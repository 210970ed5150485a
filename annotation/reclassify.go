package annotation

import (
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/igvgenome/encoding/gff3"
)

// Feature types assigned by Reclassifier.
const (
	TranscriptType = "transcript"
	GeneType       = "gene"
)

// Reclassifier forces the feature type of records carrying Ensembl
// transcript ids to "transcript" and of records carrying Ensembl gene ids to
// "gene". gff3ToGenePred only links exons to parents of these two types.
type Reclassifier struct {
	// IDKey is the attribute holding the feature id.
	IDKey string
	// TranscriptPrefix marks transcript ids.
	TranscriptPrefix string
	// GenePrefix marks gene ids.
	GenePrefix string
	// SegmentSuffix marks gene-segment types (e.g. "V_gene_segment"), which
	// are never turned into genes.
	SegmentSuffix string
}

// DefaultReclassifier handles Ensembl GFF3 exports.
var DefaultReclassifier = Reclassifier{
	IDKey:            "ID",
	TranscriptPrefix: "transcript:ENST",
	GenePrefix:       "gene:ENSG",
	SegmentSuffix:    "_gene_segment",
}

// ReclassifyStats counts the records changed by Reclassify.
type ReclassifyStats struct {
	Genes       int
	Transcripts int
}

// Reclassify rewrites the Type column of records in place.
func (c Reclassifier) Reclassify(records []gff3.Record) ReclassifyStats {
	var stats ReclassifyStats
	for i := range records {
		r := &records[i]
		id, ok := gff3.ParseAttributes(r.Attributes).Get(c.IDKey)
		if !ok {
			continue
		}
		switch {
		case c.TranscriptPrefix != "" && strings.HasPrefix(id, c.TranscriptPrefix):
			if r.Type != TranscriptType {
				r.Type = TranscriptType
				stats.Transcripts++
			}
		case c.GenePrefix != "" && strings.HasPrefix(id, c.GenePrefix):
			if r.Type != GeneType && !c.isSegment(r.Type) {
				r.Type = GeneType
				stats.Genes++
			}
		}
	}
	log.Printf("\t%d entries with %s ids are treated as genes", stats.Genes, c.GenePrefix)
	log.Printf("\t%d entries with %s ids are treated as transcripts", stats.Transcripts, c.TranscriptPrefix)
	return stats
}

func (c Reclassifier) isSegment(typ string) bool {
	return c.SegmentSuffix != "" && strings.HasSuffix(typ, c.SegmentSuffix)
}
