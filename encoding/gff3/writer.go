package gff3

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// Write emits the header lines followed by the records.
func Write(w io.Writer, header []string, records []Record) error {
	for _, line := range header {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	tw := tsv.NewWriter(w)
	for i := range records {
		r := &records[i]
		tw.WriteString(r.Seqid)
		tw.WriteString(r.Source)
		tw.WriteString(r.Type)
		tw.WriteInt64(int64(r.Start))
		tw.WriteInt64(int64(r.End))
		tw.WriteString(r.Score)
		tw.WriteString(r.Strand)
		tw.WriteString(r.Phase)
		tw.WriteString(r.Attributes)
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WritePath writes an uncompressed GFF3 file to path.
func WritePath(ctx context.Context, path string, header []string, records []Record) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E("create", path, err)
	}
	defer file.CloseAndReport(ctx, out, &err)
	if err = Write(out.Writer(ctx), header, records); err != nil {
		return errors.E("write", path, err)
	}
	return nil
}
