package s3

// Config contains configuration for the S3-backed resource loader.
type Config struct {
	Bucket         string `env:"S3_BUCKET,required"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`         // For S3-compatible services like MinIO, Wasabi
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"` // Required for MinIO and some S3-compatible services
	KeyPrefix      string `env:"S3_KEY_PREFIX"`       // Optional prefix prepended to every resource name
}
