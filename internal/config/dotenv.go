package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotEnv loads key/value pairs from path into the process environment.
// Variables already set in the environment are left untouched. A missing
// file is an error only when required is true.
func loadDotEnv(path string, required bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading env file %q: %w", path, err)
}
