package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongoDB  = "mongodb"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	App
	Session
	Extraction
	Storage
	Redis
	HTTP
	Inbox
}

type App struct {
	Env string
}

type Session struct {
	Backend       string
	TTL           time.Duration
	SweepInterval time.Duration
	UploadDir     string
}

type Extraction struct {
	MaxUploadSize int64
	OCREnabled    bool
	OCRTimeout    time.Duration
	// uploads allowed per minute, 0 disables limiting
	RateLimit int
	RateBurst int
}

type Storage struct {
	Driver     string
	PostgreSQL PostgreSQL
	MongoDB    MongoDB
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type MongoDB struct {
	URI      string
	Database string
}

type Redis struct {
	Host     string
	Port     string
	Username string
	Password string
	DB       int
}

type HTTP struct {
	Host           string
	Port           string
	IdleTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RequestTimeout time.Duration
	AllowedOrigins []string
	JWTSecret      string
}

// Inbox is disabled when Dir is empty.
type Inbox struct {
	Dir          string
	ReportsDir   string
	ScanInterval time.Duration
}

func (i Inbox) Enabled() bool {
	return i.Dir != ""
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			Env: cmd.String("env"),
		},
		Session: Session{
			Backend:       cmd.String("session-backend"),
			TTL:           cmd.Duration("session-ttl"),
			SweepInterval: cmd.Duration("sweep-interval"),
			UploadDir:     cmd.String("upload-dir"),
		},
		Extraction: Extraction{
			MaxUploadSize: cmd.Int64("max-upload-size"),
			OCREnabled:    cmd.Bool("ocr-enabled"),
			OCRTimeout:    cmd.Duration("ocr-timeout"),
			RateLimit:     cmd.Int("upload-rate-limit"),
			RateBurst:     cmd.Int("upload-rate-burst"),
		},
		Storage: Storage{
			Driver: cmd.String("storage-driver"),
			PostgreSQL: PostgreSQL{
				Host:     cmd.String("pg-host"),
				Port:     cmd.String("pg-port"),
				Username: cmd.String("pg-username"),
				Password: cmd.String("pg-password"),
				DBName:   cmd.String("pg-dbname"),
			},
			MongoDB: MongoDB{
				URI:      cmd.String("mongo-uri"),
				Database: cmd.String("mongo-database"),
			},
		},
		Redis: Redis{
			Host:     cmd.String("redis-host"),
			Port:     cmd.String("redis-port"),
			Username: cmd.String("redis-username"),
			Password: cmd.String("redis-password"),
			DB:       cmd.Int("redis-db"),
		},
		HTTP: HTTP{
			Host:           cmd.String("http-host"),
			Port:           cmd.String("http-port"),
			IdleTimeout:    cmd.Duration("http-idle-timeout"),
			ReadTimeout:    cmd.Duration("http-read-timeout"),
			WriteTimeout:   cmd.Duration("http-write-timeout"),
			RequestTimeout: cmd.Duration("http-request-timeout"),
			AllowedOrigins: cmd.StringSlice("http-allowed-origins"),
			JWTSecret:      cmd.String("jwt-secret"),
		},
		Inbox: Inbox{
			Dir:          cmd.String("inbox-dir"),
			ReportsDir:   cmd.String("reports-dir"),
			ScanInterval: cmd.Duration("scan-interval"),
		},
	}
}
