package tools

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/igvgenome/fetch"
)

const (
	// GFF3ToGenePredName is the name of the UCSC converter binary.
	GFF3ToGenePredName = "gff3ToGenePred"
	// GFF3ToGenePredURL is where UCSC publishes the linux build of the
	// converter.
	GFF3ToGenePredURL = "http://hgdownload.cse.ucsc.edu/admin/exe/linux.x86_64/gff3ToGenePred"
)

// GFF3ToGenePred runs the UCSC gff3ToGenePred converter.
type GFF3ToGenePred struct {
	// Path of the converter binary.
	Path string
}

// Convert implements Converter. in is a GFF3 file, out receives the
// extended genePred table.
func (g GFF3ToGenePred) Convert(ctx context.Context, in, out string) error {
	log.Printf("converting gff file...")
	return run(ctx, g.Path, in, out)
}

// ConverterOpts configures SetupGFF3ToGenePred.
type ConverterOpts struct {
	// Path is an explicit converter binary. When set, no lookup or download
	// takes place.
	Path string
	// URL overrides GFF3ToGenePredURL.
	URL string
	// Dir receives the downloaded binary. It must exist; the caller owns its
	// removal.
	Dir string
	// Fetcher downloads the binary. Defaults to fetch.Default.
	Fetcher fetch.Fetcher
}

// SetupGFF3ToGenePred locates the converter: opts.Path if given, else the
// binary on PATH, else a copy downloaded into opts.Dir and made executable.
func SetupGFF3ToGenePred(ctx context.Context, opts ConverterOpts) (GFF3ToGenePred, error) {
	log.Printf("initializing gff3ToGenePred converter...")
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return GFF3ToGenePred{}, errors.E(errors.NotExist, opts.Path, err)
		}
		return GFF3ToGenePred{Path: opts.Path}, nil
	}
	if path, err := Look(GFF3ToGenePredName); err == nil {
		log.Printf("using converter %s", path)
		return GFF3ToGenePred{Path: path}, nil
	}
	if opts.Dir == "" {
		return GFF3ToGenePred{}, errors.E(errors.Precondition, "no directory to download the converter to")
	}
	url := opts.URL
	if url == "" {
		url = GFF3ToGenePredURL
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = fetch.Default
	}
	dst := filepath.Join(opts.Dir, GFF3ToGenePredName)
	log.Printf("downloading converter from: %s", url)
	if err := fetcher.Fetch(ctx, url, dst); err != nil {
		return GFF3ToGenePred{}, errors.E("download converter", err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		return GFF3ToGenePred{}, errors.E(errors.NotExist, dst, err)
	}
	if err := os.Chmod(dst, info.Mode()|0111); err != nil {
		return GFF3ToGenePred{}, errors.E("chmod", dst, err)
	}
	return GFF3ToGenePred{Path: dst}, nil
}
