package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// dotenvFiles are looked up in the working directory, in order.
var dotenvFiles = []string{".env"}

// loadDotenv loads variables from the given files into the process
// environment. Variables that are already set are left untouched, so a real
// environment always takes precedence over the file. Missing files are
// skipped.
func loadDotenv(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
	}

	return nil
}
