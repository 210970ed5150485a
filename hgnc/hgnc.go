// Package hgnc loads the HUGO Gene Nomenclature Committee table that maps
// stable numeric HGNC ids to approved gene symbols.
//
// The table is the tab-separated "complete set" download. Its header starts
// with "hgnc_id\tsymbol\tname", and data lines start with "HGNC:<id>".
package hgnc

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
)

// IDPrefix starts every HGNC identifier.
const IDPrefix = "HGNC:"

// Mapping is a bidirectional HGNC id <-> symbol table.
type Mapping struct {
	symbols map[int]string
	ids     map[string]int
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{symbols: map[int]string{}, ids: map[string]int{}}
}

// Add registers id <-> symbol. A later call for the same id or symbol
// replaces the earlier one.
func (m *Mapping) Add(id int, symbol string) {
	m.symbols[id] = symbol
	m.ids[symbol] = id
}

// Symbol returns the symbol of the given HGNC id.
func (m *Mapping) Symbol(id int) (string, bool) {
	s, ok := m.symbols[id]
	return s, ok
}

// ID returns the HGNC id of the given symbol.
func (m *Mapping) ID(symbol string) (int, bool) {
	id, ok := m.ids[symbol]
	return id, ok
}

// Len returns the number of ids in the mapping.
func (m *Mapping) Len() int { return len(m.symbols) }

// ParseID parses "HGNC:<n>" or a bare "<n>".
func ParseID(s string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), IDPrefix))
}

// row picks the two columns used out of the HGNC table. The rest of the
// columns are ignored.
type row struct {
	ID     string `tsv:"hgnc_id"`
	Symbol string `tsv:"symbol"`
}

// Read parses an HGNC table. Lines that do not start with an HGNC id are
// skipped.
func Read(r io.Reader) (*Mapping, error) {
	tr := tsv.NewReader(r)
	tr.HasHeaderRow = true
	tr.UseHeaderNames = true
	tr.LazyQuotes = true
	m := NewMapping()
	for nLine := 2; ; nLine++ {
		var rec row
		if err := tr.Read(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(errors.Invalid, fmt.Sprintf("hgnc line %d", nLine), err)
		}
		if !strings.HasPrefix(rec.ID, IDPrefix) {
			continue
		}
		id, err := ParseID(rec.ID)
		if err != nil {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("hgnc line %d", nLine), err)
		}
		m.Add(id, strings.TrimSpace(rec.Symbol))
	}
	return m, nil
}

// ReadPath reads the HGNC table at path.
func ReadPath(ctx context.Context, path string) (m *Mapping, err error) {
	log.Printf("Parsing HGNC file %s...", path)
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(errors.NotExist, path, err)
	}
	defer file.CloseAndReport(ctx, in, &err)
	if m, err = Read(in.Reader(ctx)); err != nil {
		return nil, errors.E(path, err)
	}
	log.Printf("\t%d ids parsed.", m.Len())
	return m, nil
}
