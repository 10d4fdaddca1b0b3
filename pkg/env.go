package pkg

import "os"

// Getenv returns the value of the environment variable if it is set (even to
// the empty string), the fallback otherwise.
func Getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
