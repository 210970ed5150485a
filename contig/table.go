package contig

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// Presets lists the built-in tables by the name accepted by LoadTable.
var Presets = map[string]Table{
	"minimal": MinimalTable,
	"grch38":  GRCh38Table,
}

// tableRow is one line of a contig table file.
type tableRow struct {
	Name string
	Rank int
}

// ReadTable parses a two-column "name<TAB>rank" table. Lines starting with '#'
// are ignored.
func ReadTable(r io.Reader) (Table, error) {
	tr := tsv.NewReader(r)
	tr.Comment = '#'
	table := Table{}
	for {
		var row tableRow
		if err := tr.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(errors.Invalid, "contig table", err)
		}
		if _, ok := table[row.Name]; ok {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("contig table: duplicate contig %s", row.Name))
		}
		table[row.Name] = row.Rank
	}
	return table, nil
}

// LoadTable returns the preset with the given name ("minimal" or "grch38"),
// or else reads the table file at path name.
func LoadTable(ctx context.Context, name string) (table Table, err error) {
	if t, ok := Presets[name]; ok {
		return t, nil
	}
	in, err := file.Open(ctx, name)
	if err != nil {
		return nil, errors.E(errors.NotExist, fmt.Sprintf("contig table %s", name), err)
	}
	defer file.CloseAndReport(ctx, in, &err)
	return ReadTable(in.Reader(ctx))
}

// Names returns the table's contig names in rank order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return t[names[i]] < t[names[j]] })
	return names
}
