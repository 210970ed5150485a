package cmd

import (
	"context"
	"path/filepath"

	"github.com/grailbio/base/log"
	"github.com/grailbio/igvgenome/annotation"
	"github.com/grailbio/igvgenome/fetch"
	"github.com/grailbio/igvgenome/hgnc"
	"github.com/grailbio/igvgenome/manifest"
	"github.com/grailbio/igvgenome/tools"
)

type jsonOpts struct {
	templatePath, hgncPath, outPath string
	contigOrder                     string
	nativeBGZF                      bool
	xrefSource                      string

	// Defaults: fetch.Default, tools.Bgzip and tools.Tabix.
	fetcher    fetch.Fetcher
	compressor tools.Compressor
	indexer    tools.Indexer
}

func buildJSON(ctx context.Context, opts jsonOpts) error {
	if opts.fetcher == nil {
		opts.fetcher = fetch.Default
	}
	if opts.compressor == nil {
		opts.compressor = tools.Bgzip{}
	}
	if opts.indexer == nil {
		opts.indexer = tools.Tabix{}
	}
	log.Printf("validating args...")
	if err := checkInputs(
		input{"genome json template", opts.templatePath},
		input{"hgnc mapping", opts.hgncPath},
	); err != nil {
		return err
	}
	order, err := newOrder(ctx, opts.contigOrder)
	if err != nil {
		return err
	}
	m, err := manifest.Read(ctx, opts.templatePath)
	if err != nil {
		return err
	}
	outDir := filepath.Dir(opts.outPath)
	if m, err = manifest.Download(ctx, m, outDir, opts.fetcher); err != nil {
		return err
	}
	mapping, err := hgnc.ReadPath(ctx, opts.hgncPath)
	if err != nil {
		return err
	}
	m, err = manifest.UpdateGeneTracks(ctx, m, outDir, manifest.GeneTrackOpts{
		Patcher:    &annotation.Patcher{Mapping: mapping, Source: opts.xrefSource},
		Order:      order,
		Compressor: opts.compressor,
		Indexer:    opts.indexer,
	})
	if err != nil {
		return err
	}
	if m, err = manifest.UpdateAliasFile(ctx, m, outDir); err != nil {
		return err
	}
	if err = manifest.Write(ctx, opts.outPath, m); err != nil {
		return err
	}
	log.Printf("finished.")
	return nil
}
