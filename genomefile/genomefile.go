// Package genomefile reads and writes IGV .genome archives. A .genome file is
// a ZIP archive with a property.txt describing the genome and the data files
// it names, such as the sequence, cytoband and gene files.
package genomefile

import (
	"context"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
)

const (
	// PropertiesFile is the archive member describing the genome.
	PropertiesFile = "property.txt"
	// IDKey, NameKey and GeneFileKey are property.txt keys.
	IDKey       = "id"
	NameKey     = "name"
	GeneFileKey = "geneFile"
)

// Extract unpacks archive into dir. Members that would land outside dir are
// rejected.
func Extract(ctx context.Context, archive, dir string) error {
	log.Printf("extracting genome file...")
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return errors.Wrapf(err, "open %s", archive)
	}
	defer zr.Close() // nolint: errcheck
	for _, f := range zr.File {
		if err := extractFile(f, dir); err != nil {
			return errors.Wrapf(err, "extract %s", archive)
		}
	}
	return nil
}

// localPath joins the slash-separated name to dir. It fails if the result
// would lie outside dir.
func localPath(dir, name string) (string, error) {
	name = filepath.FromSlash(name)
	dst := filepath.Join(dir, name)
	rel, err := filepath.Rel(dir, dst)
	if err != nil || filepath.IsAbs(name) || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("%s: illegal member path", name)
	}
	return dst, nil
}

func extractFile(f *zip.File, dir string) (err error) {
	dst, err := localPath(dir, f.Name)
	if err != nil {
		return err
	}
	if f.FileInfo().IsDir() {
		return os.MkdirAll(dst, 0755)
	}
	if err = os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := f.Open()
	if err != nil {
		return errors.Wrap(err, f.Name)
	}
	defer in.Close() // nolint: errcheck
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = e
		}
	}()
	_, err = io.Copy(out, in)
	return errors.Wrap(err, f.Name)
}

// ReadPropertiesFile reads dir/property.txt.
func ReadPropertiesFile(ctx context.Context, dir string) (props Properties, err error) {
	path := filepath.Join(dir, PropertiesFile)
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	return ReadProperties(in.Reader(ctx))
}

// WritePropertiesFile replaces dir/property.txt.
func WritePropertiesFile(ctx context.Context, dir string, props Properties) (err error) {
	path := filepath.Join(dir, PropertiesFile)
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.CloseAndReport(ctx, out, &err)
	return props.Write(out.Writer(ctx))
}

// ReplaceGeneFile copies src over the gene file that props names in dir.
func ReplaceGeneFile(ctx context.Context, dir string, props Properties, src string) (err error) {
	log.Printf("replacing gene file...")
	name, ok := props.Get(GeneFileKey)
	if !ok || name == "" {
		return errors.Errorf("%s: no %q property", PropertiesFile, GeneFileKey)
	}
	in, err := file.Open(ctx, src)
	if err != nil {
		return errors.Wrapf(err, "open %s", src)
	}
	defer file.CloseAndReport(ctx, in, &err)
	dst, err := localPath(dir, name)
	if err != nil {
		return errors.Wrapf(err, "%s: %s", PropertiesFile, GeneFileKey)
	}
	out, err := file.Create(ctx, dst)
	if err != nil {
		return errors.Wrapf(err, "create %s", dst)
	}
	defer file.CloseAndReport(ctx, out, &err)
	_, err = io.Copy(out.Writer(ctx), in.Reader(ctx))
	return errors.Wrapf(err, "copy %s to %s", src, dst)
}

// Repack writes the regular files directly inside dir to a new deflated
// archive. Subdirectories are not included. Members are sorted by name.
func Repack(ctx context.Context, dir, archive string) (err error) {
	log.Printf("generating genome file...")
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "list %s", dir)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	out, err := file.Create(ctx, archive)
	if err != nil {
		return errors.Wrapf(err, "create %s", archive)
	}
	defer file.CloseAndReport(ctx, out, &err)
	zw := zip.NewWriter(out.Writer(ctx))
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		if err = addFile(zw, filepath.Join(dir, info.Name()), info); err != nil {
			zw.Close() // nolint: errcheck
			return errors.Wrapf(err, "repack %s", archive)
		}
	}
	return errors.Wrapf(zw.Close(), "repack %s", archive)
}

func addFile(zw *zip.Writer, path string, info os.FileInfo) error {
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Method = zip.Deflate
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close() // nolint: errcheck
	_, err = io.Copy(w, in)
	return errors.Wrap(err, path)
}
