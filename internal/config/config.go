package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	OutputDir string

	// Indent is the default whitespace sensitivity of the row pattern,
	// overridable per run with --indent.
	Indent int

	// TypeName and Package control the generated Go source.
	TypeName string
	Package  string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("ACSGEN_DB_PATH", filepath.Join(cwd, "data", "acs.db")),
		OutputDir: getEnv("ACSGEN_OUTPUT_DIR", filepath.Join(cwd, "out")),
		Indent:    getEnvInt("ACSGEN_INDENT", 2),
		TypeName:  getEnv("ACSGEN_TYPE_NAME", "VariableGroup"),
		Package:   getEnv("ACSGEN_PACKAGE", "acs"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
