package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth  int    // Number of maze columns
	MazeHeight int    // Number of maze rows
	MazeMaxDim int    // Longest side the REST API will generate
	MazeSeed   *int64 // Seed for generation; nil draws a fresh one per maze
	MazePolicy string // Branch policy name (lifo-skip, middle-index)
	MazeStyle  string // Render style (bordered, compact)
	MazeGlyphs string // Glyph set (unicode, ascii)
	ServeHTTP  bool   // Serve the REST API instead of printing one maze
	HostIP     string // Host IP for the server
	RESTPort   int    // Port for the REST API
	GinMode    string // Mode for the Gin framework (e.g., release, debug, test)
	LogDebug   bool   // Emit per-walk debug lines
}

// Load reads a .env file if available and builds the configuration from the
// environment. Malformed values are reported as errors.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return fromEnv()
}

func fromEnv() (Config, error) {
	var (
		c   Config
		err error
	)

	if c.MazeWidth, err = getEnvAsIntWithDefault("MAZE_WIDTH", 30); err != nil {
		return Config{}, err
	}
	if c.MazeHeight, err = getEnvAsIntWithDefault("MAZE_HEIGHT", 30); err != nil {
		return Config{}, err
	}
	if c.MazeMaxDim, err = getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 512); err != nil {
		return Config{}, err
	}
	if value, exists := os.LookupEnv("MAZE_SEED"); exists && value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("environment variable MAZE_SEED must be an integer: %w", err)
		}
		c.MazeSeed = &seed
	}
	if c.ServeHTTP, err = getEnvAsBoolWithDefault("SERVE_HTTP", false); err != nil {
		return Config{}, err
	}
	if c.RESTPort, err = getEnvAsIntWithDefault("REST_PORT", 8080); err != nil {
		return Config{}, err
	}
	if c.LogDebug, err = getEnvAsBoolWithDefault("LOG_DEBUG", false); err != nil {
		return Config{}, err
	}

	c.MazePolicy = getEnvWithDefault("MAZE_POLICY", "lifo-skip")
	c.MazeStyle = getEnvWithDefault("MAZE_STYLE", "bordered")
	c.MazeGlyphs = getEnvWithDefault("MAZE_GLYPHS", "unicode")
	c.HostIP = getEnvWithDefault("HOST_IP", "0.0.0.0")
	c.GinMode = getEnvWithDefault("GIN_MODE", "release")
	return c, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, falling back to defaultValue when unset.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvAsBoolWithDefault retrieves an environment variable as a boolean, falling back to defaultValue when unset.
func getEnvAsBoolWithDefault(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return value, nil
}
