package seqgo

import (
	"context"
	"sort"

	"github.com/hupe1980/seqgo/kmer"
	"github.com/hupe1980/seqgo/reftable"
)

// Candidate is a prescreen result: a reference name with the fraction of the
// query's k-mer sketch it contains.
type Candidate struct {
	Name        string
	Containment float64
}

// Prescreen shortlists references by k-mer sketch containment, descending,
// without running any alignment. limit <= 0 returns all candidates.
//
// This is a cheap triage for larger reference sets; Rank still aligns every
// row of whatever table it is given.
func (c *Checker) Prescreen(ctx context.Context, refs reftable.Table, k, limit int) ([]Candidate, error) {
	query, err := kmer.Sketch(c.query.Seq, k)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(refs))
	for _, row := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ref, err := kmer.Sketch(row.Seq, k)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Name:        row.Name,
			Containment: kmer.Containment(query, ref),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Containment > candidates[j].Containment
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	c.logger.LogPrescreen(ctx, k, len(candidates))
	return candidates, nil
}
