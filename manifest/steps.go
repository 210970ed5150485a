package manifest

import (
	"bufio"
	"context"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/igvgenome/annotation"
	"github.com/grailbio/igvgenome/contig"
	"github.com/grailbio/igvgenome/encoding/gff3"
	"github.com/grailbio/igvgenome/fetch"
	"github.com/grailbio/igvgenome/tools"
)

// Download fetches the reference files and track files of m into dir and
// returns a manifest pointing at the local copies by file name. Empty
// references are left alone.
func Download(ctx context.Context, m Manifest, dir string, f fetch.Fetcher) (Manifest, error) {
	out := m.Clone()
	get := func(src string) (string, error) {
		if src == "" {
			return "", nil
		}
		return fetch.ToDir(ctx, f, src, dir)
	}
	var err error
	for _, p := range []*string{&out.FastaURL, &out.IndexURL, &out.CytobandURL, &out.AliasURL} {
		if *p, err = get(*p); err != nil {
			return m, err
		}
	}
	for i := range out.Tracks {
		t := &out.Tracks[i]
		if t.URL, err = get(t.URL); err != nil {
			return m, err
		}
		if t.IndexURL, err = get(t.IndexURL); err != nil {
			return m, err
		}
	}
	return out, nil
}

// AliasLine appends the chrMT and M aliases to the chrM alias line. Other
// lines are returned unchanged.
func AliasLine(line string) string {
	if !strings.HasPrefix(line, "chrM") {
		return line
	}
	return strings.TrimRight(line, " \t\r") + "\tchrMT\tM"
}

// UpdateAliasFile rewrites the local alias file of m so that the
// mitochondrial chromosome also answers to chrMT and M. The manifest itself
// is unchanged.
func UpdateAliasFile(ctx context.Context, m Manifest, dir string) (Manifest, error) {
	if m.AliasURL == "" {
		return m, nil
	}
	log.Printf("Modifying alias file...")
	path := filepath.Join(dir, m.AliasURL)
	lines, err := readLines(ctx, path)
	if err != nil {
		return m, err
	}
	for i := range lines {
		lines[i] = AliasLine(lines[i])
	}
	if err := writeLines(ctx, path, lines); err != nil {
		return m, err
	}
	return m, nil
}

func readLines(ctx context.Context, path string) (lines []string, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(errors.NotExist, path, err)
	}
	defer file.CloseAndReport(ctx, in, &err)
	sc := bufio.NewScanner(in.Reader(ctx))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, errors.E("read", path, err)
	}
	return lines, nil
}

func writeLines(ctx context.Context, path string, lines []string) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E("create", path, err)
	}
	defer file.CloseAndReport(ctx, out, &err)
	w := bufio.NewWriter(out.Writer(ctx))
	for _, line := range lines {
		w.WriteString(line) // nolint: errcheck
		w.WriteByte('\n')   // nolint: errcheck
	}
	return w.Flush()
}

// GeneTrackOpts configures UpdateGeneTracks.
type GeneTrackOpts struct {
	Patcher    *annotation.Patcher
	Order      *contig.Order
	Compressor tools.Compressor
	Indexer    tools.Indexer
}

// UpdateGeneTracks patches every local GFF3 track of m with gene symbols,
// sorts it, recompresses and indexes it. The returned manifest points at the
// compressed file and its ".tbi" index.
func UpdateGeneTracks(ctx context.Context, m Manifest, dir string, opts GeneTrackOpts) (Manifest, error) {
	out := m.Clone()
	for i := range out.Tracks {
		t := &out.Tracks[i]
		if t.Format != GFF3Format {
			continue
		}
		url, err := updateGeneTrack(ctx, t.URL, dir, opts)
		if err != nil {
			return m, errors.E("track", t.URL, err)
		}
		t.URL = url
		t.IndexURL = url + ".tbi"
	}
	return out, nil
}

func updateGeneTrack(ctx context.Context, name, dir string, opts GeneTrackOpts) (string, error) {
	log.Printf("Modifying GFF3 file '%s'...", name)
	gf, err := gff3.ReadPath(ctx, filepath.Join(dir, name), gff3.ReadOpts{})
	if err != nil {
		return "", err
	}
	stats := opts.Patcher.PatchFile(gf)
	stats.Log()

	log.Printf("Sorting GFF3 file...")
	if err := gff3.Sort(gf.Records, opts.Order); err != nil {
		return "", err
	}
	plain := filepath.Join(dir, strings.TrimSuffix(name, ".gz"))
	if err := gff3.WritePath(ctx, plain, gf.Header, gf.Records); err != nil {
		return "", err
	}
	compressed, err := opts.Compressor.Compress(ctx, plain)
	if err != nil {
		return "", err
	}
	if err := opts.Indexer.Index(ctx, compressed); err != nil {
		return "", err
	}
	return file.Base(compressed), nil
}
