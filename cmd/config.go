package cmd

type Config struct {
	ServerEndpoint     string
	HTTPTimeoutSeconds string
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
}
