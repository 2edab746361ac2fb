package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DataDir         string
	EnumPath        string
	InfoPath        string
	IDHandleOutput  string
	NameTableOutput string
	EnumTable       string
	NameField       string
	SourceEncoding  string
	JSONOutput      string
	DatabaseURL     string
	DBTable         string
	LogLevel        string
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		DataDir:         getEnv("DATA_DIR", ""),
		EnumPath:        getEnv("ENUM_PATH", "skillid.lub"),
		InfoPath:        getEnv("INFO_PATH", "skillinfolist.lub"),
		IDHandleOutput:  getEnv("ID_HANDLE_OUTPUT", "SKILL_id_handle.txt"),
		NameTableOutput: getEnv("NAME_TABLE_OUTPUT", "skillnametable.txt"),
		EnumTable:       getEnv("ENUM_TABLE", "SKID"),
		NameField:       getEnv("NAME_FIELD", "SkillName"),
		SourceEncoding:  getEnv("SOURCE_ENCODING", ""),
		JSONOutput:      getEnv("JSON_OUTPUT", ""),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DBTable:         getEnv("DB_TABLE", "skill_names"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
