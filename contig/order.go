// Package contig orders chromosome and contig names the way IGV expects
// annotation tracks to be sorted: numbered chromosomes first, then the named
// contigs of a rank table, then accession-style contigs grouped by prefix.
//
// Example:
//
//	order, err := contig.NewOrder(contig.MinimalTable, contig.DefaultAccessions...)
//	...
//	key, err := order.Key("GL000194.1")
package contig

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/grailbio/base/errors"
)

const (
	// BandWidth is the number of flattened ranks reserved for one accession
	// prefix.
	BandWidth = int64(1) << 40

	// versionWidth is the number of flattened ranks reserved for the versions
	// of one accession number.
	versionWidth = 1000
)

// Table maps a contig name to its rank. Ranks must be unique, and every rank
// must be larger than the numbered chromosomes that appear next to the table's
// contigs.
type Table map[string]int

// MinimalTable knows only the sex and mitochondrial chromosomes.
var MinimalTable = Table{"X": 100, "Y": 101, "MT": 102}

// Accession recognizes accession-style contig names such as "GL000194.1" or
// "KI270721v1": a fixed prefix, a number and an optional version.
type Accession struct {
	// Prefix is the literal name prefix, for example "GL0" or "KI".
	Prefix string
	re     *regexp.Regexp
}

// NewAccession creates an Accession for names of the form
// <prefix><digits>[.<version>|v<version>].
func NewAccession(prefix string) Accession {
	return Accession{
		Prefix: prefix,
		re:     regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)(?:[.v](\d+))?$`),
	}
}

// DefaultAccessions are the GRC accession prefixes found in Ensembl GRCh37
// and GRCh38 annotations. GL0 contigs sort before KI contigs.
var DefaultAccessions = []Accession{NewAccession("GL0"), NewAccession("KI")}

// parse extracts the accession number and version. ok is false if the name
// does not match the pattern.
func (a Accession) parse(name string) (number, version int64, ok bool, err error) {
	m := a.re.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false, nil
	}
	if number, err = strconv.ParseInt(m[1], 10, 64); err != nil {
		return 0, 0, true, err
	}
	if m[2] != "" {
		if version, err = strconv.ParseInt(m[2], 10, 64); err != nil {
			return 0, 0, true, err
		}
	}
	if version >= versionWidth || number >= BandWidth/versionWidth {
		return 0, 0, true, fmt.Errorf("accession %s out of range", name)
	}
	return number, version, true, nil
}

// Key is the sort key of one contig name. Band 0 holds numbered chromosomes
// and table contigs; band i > 0 holds the contigs matched by the i'th
// accession pattern.
type Key struct {
	Band  int
	Major int64
	Minor int64
}

// Compare returns -1, 0 or 1 depending on whether k sorts before, together
// with, or after o.
func (k Key) Compare(o Key) int {
	switch {
	case k.Band != o.Band:
		return cmpInt64(int64(k.Band), int64(o.Band))
	case k.Major != o.Major:
		return cmpInt64(k.Major, o.Major)
	}
	return cmpInt64(k.Minor, o.Minor)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Order ranks contig names. It is immutable once created.
type Order struct {
	table      Table
	accessions []Accession
	// minRank and maxRank are the smallest and largest table ranks.
	minRank, maxRank int64
}

// NewOrder validates the table and creates an Order. Accession patterns are
// tried in the given order, and each one gets its own band.
func NewOrder(table Table, accessions ...Accession) (*Order, error) {
	o := &Order{
		table:      table,
		accessions: accessions,
		minRank:    math.MaxInt64,
		maxRank:    0,
	}
	seen := make(map[int]string, len(table))
	for name, rank := range table {
		if rank <= 0 {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("contig table: rank of %s must be positive, found %d", name, rank))
		}
		if prev, ok := seen[rank]; ok {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("contig table: %s and %s share rank %d", prev, name, rank))
		}
		seen[rank] = name
		if int64(rank) < o.minRank {
			o.minRank = int64(rank)
		}
		if int64(rank) > o.maxRank {
			o.maxRank = int64(rank)
		}
	}
	if len(table) == 0 {
		// Numbered chromosomes then fill the first band, so Rank stays
		// monotone with Key.
		o.minRank, o.maxRank = BandWidth, BandWidth-1
	}
	return o, nil
}

// Key computes the sort key of name:
//
//  1. a table contig gets its table rank;
//  2. an accession contig gets the band of the first matching pattern and is
//     ordered by accession number, then version;
//  3. a numbered chromosome gets its number, which must be smaller than every
//     table rank.
//
// Any other name is an error: it is outside every known naming convention.
func (o *Order) Key(name string) (Key, error) {
	if rank, ok := o.table[name]; ok {
		return Key{Major: int64(rank)}, nil
	}
	for i, a := range o.accessions {
		number, version, ok, err := a.parse(name)
		if err != nil {
			return Key{}, errors.E(errors.Invalid, fmt.Sprintf("contig %s", name), err)
		}
		if ok {
			return Key{Band: i + 1, Major: number, Minor: version}, nil
		}
	}
	if !isDigits(name) {
		return Key{}, errors.E(errors.Invalid, fmt.Sprintf("contig %s: not a numbered chromosome, not in the contig table and not an accession", name))
	}
	n, err := strconv.ParseInt(name, 10, 64)
	if err != nil {
		return Key{}, errors.E(errors.Invalid, fmt.Sprintf("contig %s", name), err)
	}
	if n >= o.minRank {
		return Key{}, errors.E(errors.Invalid, fmt.Sprintf("contig %s: chromosome number must be below %d", name, o.minRank))
	}
	return Key{Major: n}, nil
}

// Rank flattens Key(name) into a single integer. Table contigs and numbered
// chromosomes rank as their table value or number; accession contigs rank
// above every table entry, BandWidth ranks per accession pattern. Without a
// table, numbered chromosomes below BandWidth are allowed and accessions rank
// above them.
func (o *Order) Rank(name string) (int64, error) {
	k, err := o.Key(name)
	if err != nil {
		return 0, err
	}
	if k.Band == 0 {
		return k.Major, nil
	}
	return o.maxRank + 1 + int64(k.Band-1)*BandWidth + k.Major*versionWidth + k.Minor, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
