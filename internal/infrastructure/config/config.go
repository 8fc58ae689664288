package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration values read from the environment.
// Missing remote credentials degrade reads to the local mirror and make all
// writes fail with a configuration error; they never crash startup.
type Config struct {
	Port            string
	GitHubToken     string
	Repo            string
	Branch          string
	ContentDir      string
	LocalContentDir string
	RedisURL        string
	DeployHookURL   string
	AdminJWTSecret  string
	CacheTTL        time.Duration
	ViewThrottle    time.Duration
	RemoteTimeout   time.Duration
	PostsPerPage    int
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		GitHubToken:     getEnv("GITHUB_TOKEN", ""),
		Repo:            getEnv("REPO", ""),
		Branch:          getEnv("BRANCH", "main"),
		ContentDir:      getEnv("CONTENT_DIR", "content/posts"),
		LocalContentDir: getEnv("LOCAL_CONTENT_DIR", "content/posts"),
		RedisURL:        getEnv("REDIS_URL", ""),
		DeployHookURL:   getEnv("DEPLOY_HOOK_URL", ""),
		AdminJWTSecret:  getEnv("ADMIN_JWT_SECRET", ""),
		CacheTTL:        time.Second * time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 15)),
		ViewThrottle:    time.Second * time.Duration(getEnvAsInt("VIEW_THROTTLE_SECONDS", 3600)),
		RemoteTimeout:   time.Second * time.Duration(getEnvAsInt("REMOTE_TIMEOUT_SECONDS", 10)),
		PostsPerPage:    getEnvAsInt("POSTS_PER_PAGE", 6),
	}
}

// RemoteConfigured reports whether the remote content store can be reached
// at all. Without it the site serves the local mirror only.
func (c *Config) RemoteConfigured() bool {
	return c.GitHubToken != "" && c.Repo != ""
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
