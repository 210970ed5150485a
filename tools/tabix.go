package tools

import (
	"context"

	"github.com/grailbio/base/log"
)

// Tabix runs the htslib tabix program with the GFF preset.
type Tabix struct {
	// Path of the tabix binary. Defaults to "tabix" looked up on PATH.
	Path string
}

// Index implements Indexer. It writes path.tbi.
func (t Tabix) Index(ctx context.Context, path string) error {
	bin := t.Path
	if bin == "" {
		bin = "tabix"
	}
	log.Printf("indexing file '%s'...", path)
	return run(ctx, bin, "-p", "gff", path)
}
