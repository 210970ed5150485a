// Package genepred reads and writes UCSC genePred tables
// (https://genome.ucsc.edu/FAQ/FAQformat.html#format9) in the extended
// 15-column layout produced by gff3ToGenePred, and the 16-column layout with a
// leading numeric gene id that IGV reads from .genome archives.
package genepred

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// Record is one transcript of an extended genePred table. Coordinates are
// 0-based, half-open. ExonStarts, ExonEnds and ExonFrames are kept as the
// comma-terminated lists found in the file.
type Record struct {
	Name         string
	Chrom        string
	Strand       string
	TxStart      int64
	TxEnd        int64
	CdsStart     int64
	CdsEnd       int64
	ExonCount    int64
	ExonStarts   string
	ExonEnds     string
	Score        int64
	Name2        string
	CdsStartStat string
	CdsEndStat   string
	ExonFrames   string
}

// IGVRecord is a Record preceded by a numeric gene id column.
type IGVRecord struct {
	GeneID int64
	Record
}

// Read parses an extended genePred table.
func Read(r io.Reader) ([]Record, error) {
	tr := tsv.NewReader(r)
	tr.Comment = '#'
	var recs []Record
	for {
		var rec Record
		if err := tr.Read(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(errors.Invalid, fmt.Sprintf("genepred record %d", len(recs)+1), err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ReadPath reads the genePred table at path.
func ReadPath(ctx context.Context, path string) (recs []Record, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(errors.NotExist, path, err)
	}
	defer file.CloseAndReport(ctx, in, &err)
	if recs, err = Read(in.Reader(ctx)); err != nil {
		return nil, errors.E(path, err)
	}
	return recs, nil
}

func writeRecord(w *tsv.Writer, r *Record) {
	w.WriteString(r.Name)
	w.WriteString(r.Chrom)
	w.WriteString(r.Strand)
	w.WriteInt64(r.TxStart)
	w.WriteInt64(r.TxEnd)
	w.WriteInt64(r.CdsStart)
	w.WriteInt64(r.CdsEnd)
	w.WriteInt64(r.ExonCount)
	w.WriteString(r.ExonStarts)
	w.WriteString(r.ExonEnds)
	w.WriteInt64(r.Score)
	w.WriteString(r.Name2)
	w.WriteString(r.CdsStartStat)
	w.WriteString(r.CdsEndStat)
	w.WriteString(r.ExonFrames)
}

// write emits an extended genePred table.
func write(w io.Writer, recs []Record) error {
	tw := tsv.NewWriter(w)
	for i := range recs {
		writeRecord(tw, &recs[i])
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteIGV emits a genePred table with the leading gene id column.
func WriteIGV(w io.Writer, recs []IGVRecord) error {
	tw := tsv.NewWriter(w)
	for i := range recs {
		tw.WriteInt64(recs[i].GeneID)
		writeRecord(tw, &recs[i].Record)
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteIGVPath writes recs to path with WriteIGV.
func WriteIGVPath(ctx context.Context, path string, recs []IGVRecord) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E("create", path, err)
	}
	defer file.CloseAndReport(ctx, out, &err)
	if err = WriteIGV(out.Writer(ctx), recs); err != nil {
		return errors.E("write", path, err)
	}
	return nil
}
