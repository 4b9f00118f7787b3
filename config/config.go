package config

import (
	"os"
	"strings"
)

const (
	// ModeEnv is the environment variable holding the runtime mode.
	ModeEnv = "NODE_ENV"
	// ProductionMode is the only ModeEnv value that selects production settings.
	// The comparison is exact: "PRODUCTION" or " production" select development.
	ProductionMode = "production"

	ProductionAPIBaseURL  = "https://irys-gallery-vercel.vercel.app/api"
	DevelopmentAPIBaseURL = "http://localhost:3000/api"

	defaultPort = "10000"
)

// APIBaseURL is the gallery API root for this process, resolved once at load.
var APIBaseURL = BaseURL(os.Getenv(ModeEnv))

type Config struct {
	IsProduction   bool
	APIBaseURL     string
	DatabaseURL    string
	Addr           string
	AllowedOrigins []string
	// TrustProxy honours X-Forwarded-For and X-Real-IP. Enable it only
	// behind a proxy that overwrites those headers.
	TrustProxy bool
}

// BaseURL returns the API base URL for the given runtime mode.
func BaseURL(mode string) string {
	if mode == ProductionMode {
		return ProductionAPIBaseURL
	}
	return DevelopmentAPIBaseURL
}

func New() Config {
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) Config {
	mode := getenv(ModeEnv)
	port := getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	return Config{
		IsProduction:   mode == ProductionMode,
		APIBaseURL:     BaseURL(mode),
		DatabaseURL:    getenv("DATABASE_URL"),
		Addr:           ":" + port,
		AllowedOrigins: splitOrigins(getenv("ALLOWED_ORIGINS")),
		TrustProxy:     getenv("TRUST_PROXY") == "true",
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
