package seqgo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/seqgo/align"
	"github.com/hupe1980/seqgo/blobstore"
	"github.com/hupe1980/seqgo/reftable"
)

// Rank scores the query against every reference row, sorts the table
// descending by raw alignment score, logs the best match, persists the full
// table to outDir under the codec's fixed artifact name and returns it.
//
// The reference table is never mutated. An empty table is ErrEmptyReferences;
// a row without sequence data fails fast instead of producing a NaN score.
func (c *Checker) Rank(ctx context.Context, refs reftable.Table, outDir string) (reftable.ScoredTable, error) {
	scored, err := c.Score(ctx, refs)
	if err != nil {
		return nil, err
	}

	if err := c.Export(ctx, blobstore.NewLocalStore(outDir), scored); err != nil {
		return nil, err
	}
	return scored, nil
}

// Score computes the scored table without persisting it: one global alignment
// score per reference row, sorted descending, ties in input order. Row 0 of
// the result is the best match, which is also reported through the logger.
func (c *Checker) Score(ctx context.Context, refs reftable.Table) (reftable.ScoredTable, error) {
	start := time.Now()

	scored, err := c.score(ctx, refs)
	c.metrics.RecordRank(len(refs), time.Since(start), err)
	if err != nil {
		c.logger.LogRank(ctx, len(refs), "", err)
		return nil, err
	}

	c.logger.LogRank(ctx, len(refs), scored.Best().Name, nil)
	return scored, nil
}

func (c *Checker) score(ctx context.Context, refs reftable.Table) (reftable.ScoredTable, error) {
	if len(refs) == 0 {
		return nil, ErrEmptyReferences
	}

	scored := make(reftable.ScoredTable, 0, len(refs))
	for _, row := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(row.Seq) == 0 {
			return nil, &reftable.ErrMissingSequence{Name: row.Name}
		}

		alignStart := time.Now()
		score := align.Global(c.query.Seq, row.Seq, c.scoring)
		c.metrics.RecordAlign(time.Since(alignStart))

		scored = append(scored, reftable.ScoredRow{Row: row, RawScore: score})
	}

	scored.SortByScore()
	return scored, nil
}

// Export encodes the scored table with the checker's codec and persists it
// through the given store under the codec's fixed artifact name.
func (c *Checker) Export(ctx context.Context, store blobstore.Store, scored reftable.ScoredTable) error {
	start := time.Now()

	err := c.export(ctx, store, scored)
	c.metrics.RecordExport(time.Since(start), err)
	c.logger.LogExport(ctx, c.codec.Filename(), err)
	return err
}

func (c *Checker) export(ctx context.Context, store blobstore.Store, scored reftable.ScoredTable) error {
	data, err := c.codec.Encode(scored)
	if err != nil {
		return fmt.Errorf("encode score table: %w", err)
	}
	if err := store.Put(ctx, c.codec.Filename(), data); err != nil {
		return fmt.Errorf("persist score table: %w", err)
	}
	return nil
}
