package source

// Config holds configuration for the raw-file source.
type Config struct {
	// Backend selects where raw files are read from (local or s3).
	Backend string `mapstructure:"backend" default:"local"`
	// Dir is the local directory holding raw dataset files.
	Dir string `mapstructure:"dir" default:"./raw"`
	// Endpoint is the URL of the object storage service (s3 backend).
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket holding raw dataset files (s3 backend).
	Bucket string `mapstructure:"bucket" default:"raw"`
	// Prefix restricts listing to keys under this prefix (s3 backend).
	Prefix string `mapstructure:"prefix" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
