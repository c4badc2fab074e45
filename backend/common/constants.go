package common

import (
	"flag"
	"os"
	"strings"
	"time"
)

var Version = "v0.1.0"
var SystemName = "WCS Planner"
var StartTime = time.Now().Unix()

var Port = flag.Int("port", 3000, "the listening port")
var PrintVersion = flag.Bool("version", false, "print version and exit")
var PrintHelpFlag = flag.Bool("help", false, "print help and exit")

// Loaded from env / config file in InitConfig.
var (
	JWTSecret     string
	SQLitePath    = "data/planner.db"
	UploadPath    = "uploads"
	AvatarPath    = "avatars"
	FrontendPath  = "./frontend/dist"
	ServerAddress = "http://localhost:3000"
	Environment   = "development"
)

// TokenValidity is how long an issued credential is accepted.
const TokenValidity = 7 * 24 * time.Hour

func PrintHelp() {
	println(SystemName + " " + Version)
	println("Usage: wcs-backend [--port <port>] [--version] [--help]")
}

// InitConfig applies environment variables on top of the defaults above.
// The JWT secret falls back to the generated one in the config file so a
// fresh install works without any environment at all.
func InitConfig() error {
	if p := os.Getenv("PORT"); p != "" {
		// flag default only; an explicit --port wins
		if *Port == 3000 {
			if v, err := parsePort(p); err == nil {
				*Port = v
			}
		}
	}
	JWTSecret = os.Getenv("JWT_SECRET")
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		SQLitePath = v
	}
	if v := os.Getenv("UPLOAD_PATH"); v != "" {
		UploadPath = v
	}
	if v := os.Getenv("AVATAR_PATH"); v != "" {
		AvatarPath = v
	}
	if v := os.Getenv("FRONTEND_PATH"); v != "" {
		FrontendPath = v
	}
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		ServerAddress = strings.TrimSuffix(v, "/")
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		Environment = v
	}
	if err := loadConfigFile(); err != nil {
		return err
	}
	return nil
}

// AllowedOrigins returns the CORS allow list: local dev origins plus the
// deployed frontend origin when configured.
func AllowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	if v := os.Getenv("FRONTEND_ORIGIN"); v != "" {
		origins = append(origins, strings.TrimSuffix(v, "/"))
	}
	return origins
}
