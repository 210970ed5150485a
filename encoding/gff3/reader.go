package gff3

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
)

// Terminator is the directive that closes all forward references. It is
// dropped when reading, since sorting invalidates it.
const Terminator = "###"

// ReadOpts controls Read.
type ReadOpts struct {
	// SkipSeqidPrefixes drops the records whose seqid starts with any of the
	// prefixes.
	SkipSeqidPrefixes []string
}

// File is the content of a GFF3 file.
type File struct {
	// Header lists the comment and directive lines in input order, without
	// line terminators.
	Header []string
	// Records lists the feature lines in input order.
	Records []Record
	// Ignored counts the dropped terminator lines.
	Ignored int
	// Skipped counts the records dropped by ReadOpts.SkipSeqidPrefixes.
	Skipped int
}

// Read parses a GFF3 stream. Comment lines are kept verbatim in File.Header,
// except for bare "###" terminators.
func Read(r io.Reader, opts ReadOpts) (*File, error) {
	f := &File{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), 64<<20)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if line[0] == '#' {
			if strings.TrimSpace(line) == Terminator {
				f.Ignored++
				continue
			}
			f.Header = append(f.Header, line)
			continue
		}
		if hasAnyPrefix(line, opts.SkipSeqidPrefixes) {
			f.Skipped++
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("gff3 line %d", lineno), err)
		}
		f.Records = append(f.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E("gff3 read", err)
	}
	return f, nil
}

// ReadPath reads the GFF3 file at path. Files ending in ".gz" are
// decompressed.
func ReadPath(ctx context.Context, path string, opts ReadOpts) (gf *File, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(errors.NotExist, path, err)
	}
	defer file.CloseAndReport(ctx, in, &err)
	var r io.Reader = in.Reader(ctx)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.E(errors.Invalid, path, err)
		}
		defer gz.Close() // nolint: errcheck
		r = gz
	}
	if gf, err = Read(r, opts); err != nil {
		return nil, errors.E(path, err)
	}
	return gf, nil
}

func parseRecord(line string) (Record, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != 9 {
		return Record{}, fmt.Errorf("expect 9 columns, found %d", len(cols))
	}
	start, err := strconv.Atoi(cols[3])
	if err != nil {
		return Record{}, fmt.Errorf("start: %v", err)
	}
	end, err := strconv.Atoi(cols[4])
	if err != nil {
		return Record{}, fmt.Errorf("end: %v", err)
	}
	return Record{
		Seqid:      cols[0],
		Source:     cols[1],
		Type:       cols[2],
		Start:      start,
		End:        end,
		Score:      cols[5],
		Strand:     cols[6],
		Phase:      cols[7],
		Attributes: cols[8],
	}, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
