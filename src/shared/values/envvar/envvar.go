package envvar

import (
	"fmt"
	"os"
)

const (
	ENVIRONMENT     = "ENVIRONMENT"
	OUTPUT_BASE_URL = "OUTPUT_BASE_URL"
	PORT            = "PORT"
)

func MustGet(key string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	if val == "" {
		panic(fmt.Sprintf("Env variable is empty for key %s", key))
	}

	return val
}

// GetOrDefault treats an empty value the same as an unset one
func GetOrDefault(key string, fallback string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet || val == "" {
		return fallback
	}

	return val
}
