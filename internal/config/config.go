package config

import "os"

type Config struct {
	Env      string
	Port     string
	MongoURI string
	MongoDB  string

	// JWT signing secrets, one per principal kind
	JWTUserSecret  string
	JWTAdminSecret string

	// MinIO
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string

	// Razorpay
	RazorpayKeyID     string
	RazorpayKeySecret string

	FrontendURL string
}

func Load() Config {
	return Config{
		Env:      getenv("APP_ENV", "development"),
		Port:     getenv("PORT", "8080"),
		MongoURI: getenv("MONGO_URI", "mongodb://localhost:27017/coursebay"),
		MongoDB:  getenv("MONGO_DB", "coursebay"),

		JWTUserSecret:  os.Getenv("JWT_USER_SECRET"),
		JWTAdminSecret: os.Getenv("JWT_ADMIN_SECRET"),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getenv("MINIO_BUCKET", "course-images"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		FrontendURL: getenv("FRONTEND_URL", "http://localhost:5173"),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
