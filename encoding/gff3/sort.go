package gff3

import (
	"sort"

	"github.com/grailbio/igvgenome/contig"
)

// Sort orders records by (contig key, start) in place. The sort is stable, so
// records with the same contig and start keep their input order. Seqids are
// never rewritten: the contig key is kept next to each record while sorting.
//
// Sort fails without modifying records if a seqid cannot be ranked.
func Sort(records []Record, order *contig.Order) error {
	type keyed struct {
		key contig.Key
		rec Record
	}
	// Seqids repeat in long runs; cache their keys.
	cache := map[string]contig.Key{}
	tmp := make([]keyed, len(records))
	for i := range records {
		seqid := records[i].Seqid
		k, ok := cache[seqid]
		if !ok {
			var err error
			if k, err = order.Key(seqid); err != nil {
				return err
			}
			cache[seqid] = k
		}
		tmp[i] = keyed{k, records[i]}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		if c := tmp[i].key.Compare(tmp[j].key); c != 0 {
			return c < 0
		}
		return tmp[i].rec.Start < tmp[j].rec.Start
	})
	for i := range tmp {
		records[i] = tmp[i].rec
	}
	return nil
}
