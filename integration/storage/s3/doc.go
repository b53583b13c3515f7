// Package s3 provides a loader.Loader backed by Amazon S3 or any
// S3-compatible service (MinIO, Wasabi, R2). It lets the static serving
// pipeline front a bucket the same way it fronts a local directory:
//
//	src, err := s3.New(ctx, s3.Config{
//		Bucket: "site-assets",
//		Region: "eu-west-1",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := static.NewConfig(src).WithPreferGzip(true)
//
// Missing objects are reported as expected misses; every other S3 failure
// is classified as a storage fault so it surfaces as a server error, never
// as a spurious 404.
package s3
