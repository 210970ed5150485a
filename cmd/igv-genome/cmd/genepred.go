package cmd

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/igvgenome/annotation"
	"github.com/grailbio/igvgenome/encoding/genepred"
	"github.com/grailbio/igvgenome/encoding/gff3"
	"github.com/grailbio/igvgenome/fetch"
	"github.com/grailbio/igvgenome/geneid"
	"github.com/grailbio/igvgenome/genomefile"
	"github.com/grailbio/igvgenome/hgnc"
	"github.com/grailbio/igvgenome/tools"
)

// unplacedPrefixes are the contigs dropped before conversion. Their genes
// are still indexed, so every gene id stays resolvable.
var unplacedPrefixes = []string{"GL000", "KI270"}

type genePredOpts struct {
	gffPath, hgncPath, genomePath, outPath string
	contigOrder                            string
	converterPath, converterURL            string
	idSuffix, nameSuffix                   string

	// converter overrides the gff3ToGenePred setup.
	converter tools.Converter
	fetcher   fetch.Fetcher
}

// input is a required input file and its description in error messages.
type input struct{ what, path string }

// checkInputs fails with errors.NotExist on the first input that is not a
// regular file.
func checkInputs(inputs ...input) error {
	for _, in := range inputs {
		if info, err := os.Stat(in.path); err != nil || info.IsDir() {
			return errors.E(errors.NotExist, fmt.Sprintf("%s file not found in %s", in.what, in.path))
		}
	}
	return nil
}

func convertGenePred(ctx context.Context, opts genePredOpts) (err error) {
	log.Printf("validating args...")
	if err = checkInputs(
		input{"gff", opts.gffPath},
		input{"hgnc mapping", opts.hgncPath},
		input{"genome", opts.genomePath},
	); err != nil {
		return err
	}
	order, err := newOrder(ctx, opts.contigOrder)
	if err != nil {
		return err
	}
	tempDir, err := ioutil.TempDir("", "igv-genome")
	if err != nil {
		return errors.E("create temp dir", err)
	}
	defer func() {
		if e := os.RemoveAll(tempDir); e != nil {
			log.Error.Printf("remove %s: %v", tempDir, e)
		}
	}()

	log.Printf("reading gff file...")
	gf, err := gff3.ReadPath(ctx, opts.gffPath, gff3.ReadOpts{SkipSeqidPrefixes: unplacedPrefixes})
	if err != nil {
		return err
	}
	log.Debug.Printf("\t%d records on unplaced contigs skipped", gf.Skipped)
	annotation.DefaultReclassifier.Reclassify(gf.Records)
	log.Printf("sorting gff data...")
	if err = gff3.Sort(gf.Records, order); err != nil {
		return err
	}
	sorted := filepath.Join(tempDir, "sorted.gff3")
	log.Printf("writing gff file...")
	if err = gff3.WritePath(ctx, sorted, gf.Header, gf.Records); err != nil {
		return err
	}

	conv := opts.converter
	if conv == nil {
		if conv, err = tools.SetupGFF3ToGenePred(ctx, tools.ConverterOpts{
			Path:    opts.converterPath,
			URL:     opts.converterURL,
			Dir:     tempDir,
			Fetcher: opts.fetcher,
		}); err != nil {
			return err
		}
	}
	converted := filepath.Join(tempDir, "converted.genepred")
	if err = conv.Convert(ctx, sorted, converted); err != nil {
		return err
	}

	mapping, err := hgnc.ReadPath(ctx, opts.hgncPath)
	if err != nil {
		return err
	}
	full, err := gff3.ReadPath(ctx, opts.gffPath, gff3.ReadOpts{})
	if err != nil {
		return err
	}
	index, _ := geneid.BuildIndex(full.Records, mapping, annotation.DefaultSource)
	recs, err := genepred.ReadPath(ctx, converted)
	if err != nil {
		return err
	}
	resolved, _, err := geneid.ResolveAll(recs, index, mapping)
	if err != nil {
		return err
	}
	modified := filepath.Join(tempDir, "modified.genepred")
	if err = genepred.WriteIGVPath(ctx, modified, resolved); err != nil {
		return err
	}
	return repackGenome(ctx, opts, tempDir, modified)
}

func repackGenome(ctx context.Context, opts genePredOpts, tempDir, geneFile string) error {
	dir := filepath.Join(tempDir, "genome")
	if err := os.Mkdir(dir, 0755); err != nil {
		return errors.E("create", dir, err)
	}
	if err := genomefile.Extract(ctx, opts.genomePath, dir); err != nil {
		return err
	}
	log.Printf("modifying genome property file (%s)...", genomefile.PropertiesFile)
	props, err := genomefile.ReadPropertiesFile(ctx, dir)
	if err != nil {
		return err
	}
	if props, err = props.AppendSuffix(opts.idSuffix, opts.nameSuffix); err != nil {
		return err
	}
	if err = genomefile.WritePropertiesFile(ctx, dir, props); err != nil {
		return err
	}
	if err = genomefile.ReplaceGeneFile(ctx, dir, props, geneFile); err != nil {
		return err
	}
	return genomefile.Repack(ctx, dir, opts.outPath)
}
