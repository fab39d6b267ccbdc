package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Redis is optional; with an empty addr the catalog is read straight
	// from postgres.
	RedisAddr       string
	RedisPassword   string
	CatalogCacheTTL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	// Cleanup job settings; empty values fall back to the jobs package
	// defaults.
	CleanupSchedule string
	ReceiptAge      string
	UploadRetention string
}
