package configprovider

import (
	"fmt"
	"log"
	"os"

	"workorder/providers"

	"github.com/joho/godotenv"
)

type EnvConfigProvider struct {
	dbUser         string
	dbPassword     string
	dbHost         string
	dbPort         string
	dbName         string
	serverPort     string
	redisAddr      string
	minioEndpoint  string
	minioAccessKey string
	minioSecretKey string
	minioBucket    string
	minioUseSSL    bool
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.dbUser = os.Getenv("DB_USER")
	e.dbPassword = os.Getenv("DB_PASSWORD")
	e.dbHost = os.Getenv("DB_HOST")
	e.dbPort = os.Getenv("DB_PORT")
	e.dbName = os.Getenv("DB_NAME")
	e.serverPort = os.Getenv("SERVER_PORT")
	e.redisAddr = os.Getenv("REDIS_ADDR")
	e.minioEndpoint = os.Getenv("MINIO_ENDPOINT")
	e.minioAccessKey = os.Getenv("MINIO_ACCESS_KEY")
	e.minioSecretKey = os.Getenv("MINIO_SECRET_KEY")
	e.minioBucket = os.Getenv("MINIO_BUCKET")
	e.minioUseSSL = os.Getenv("MINIO_USE_SSL") == "true"
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		e.dbUser, e.dbPassword, e.dbHost, e.dbPort, e.dbName)
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}

func (e *EnvConfigProvider) GetMinioEndpoint() string {
	return e.minioEndpoint
}

func (e *EnvConfigProvider) GetMinioAccessKey() string {
	return e.minioAccessKey
}

func (e *EnvConfigProvider) GetMinioSecretKey() string {
	return e.minioSecretKey
}

func (e *EnvConfigProvider) GetMinioBucket() string {
	return e.minioBucket
}

func (e *EnvConfigProvider) GetMinioUseSSL() bool {
	return e.minioUseSSL
}
