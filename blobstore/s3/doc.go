// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("reports/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	scored, err := checker.Rank(ctx, refs, outDir)
//	err = checker.Export(ctx, store, scored)
//
// # Features
//
//   - Managed (multipart-capable) uploads via the S3 upload manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
