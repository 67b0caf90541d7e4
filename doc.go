// Package seqgo provides an embeddable sequence similarity checker for Go.
//
// Seqgo compares a single "mystery" query sequence against a small reference
// database of named sequences, scores every pair with a global pairwise
// alignment, ranks the references by raw alignment score and persists the
// scored table.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	checker, _ := seqgo.FromFile("./mystery_seq")
//	refs, _ := reftable.ReadCSV(refsFile)
//
//	scored, _ := checker.Rank(ctx, refs, "./out")
//	fmt.Println(scored.Best().Name, scored.Best().RawScore)
//
// Rank writes the full sorted table to
// <outDir>/similarity_alignment_raw_scores.csv and logs the best match.
//
// # Scoring
//
// Scores come from a global (full-length) alignment under the default
// scheme: one point per matched position, nothing for mismatches or gaps.
// Two identical sequences score their length; sequences with no symbol in
// common score 0. Use WithScoring to change the scheme.
//
// # Persistence
//
// The scored table can also be exported through any blobstore.Store:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("reports/"))
//	_ = checker.Export(ctx, store, scored)
//
// # Prescreen
//
// For larger reference sets, Prescreen shortlists candidates by k-mer sketch
// containment without aligning:
//
//	candidates, _ := checker.Prescreen(refs, 8, 10)
//
// Prescreen never replaces Rank: the scored table always covers every row.
package seqgo
