package tools

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/bgzf"
)

// Bgzip runs the htslib bgzip program.
type Bgzip struct {
	// Path of the bgzip binary. Defaults to "bgzip" looked up on PATH.
	Path string
}

func (b Bgzip) binary() string {
	if b.Path == "" {
		return "bgzip"
	}
	return b.Path
}

// Compress implements Compressor. It runs "bgzip -f path".
func (b Bgzip) Compress(ctx context.Context, path string) (string, error) {
	log.Printf("bgzipping file '%s'...", path)
	if err := run(ctx, b.binary(), "-f", path); err != nil {
		return "", err
	}
	return path + ".gz", nil
}

// BGZF compresses files without external programs. The output is block
// gzip, readable by tabix and by plain gzip decoders.
type BGZF struct {
	// Parallelism is the number of compression goroutines. Defaults to 1.
	Parallelism int
}

// Compress implements Compressor. Like "bgzip -f", it overwrites path.gz and
// removes path on success.
func (b BGZF) Compress(ctx context.Context, path string) (string, error) {
	log.Printf("bgzipping file '%s'...", path)
	dst := path + ".gz"
	if err := b.compress(ctx, path, dst); err != nil {
		_ = file.Remove(ctx, dst)
		return "", err
	}
	if err := file.Remove(ctx, path); err != nil {
		return "", errors.E("remove", path, err)
	}
	return dst, nil
}

func (b BGZF) compress(ctx context.Context, src, dst string) (err error) {
	in, err := file.Open(ctx, src)
	if err != nil {
		return errors.E(errors.NotExist, src, err)
	}
	defer file.CloseAndReport(ctx, in, &err)
	out, err := file.Create(ctx, dst)
	if err != nil {
		return errors.E("create", dst, err)
	}
	defer file.CloseAndReport(ctx, out, &err)

	parallelism := b.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	w := bgzf.NewWriter(out.Writer(ctx), parallelism)
	if _, err = io.Copy(w, in.Reader(ctx)); err != nil {
		w.Close() // nolint: errcheck
		return errors.E("compress", src, err)
	}
	return w.Close()
}
