package paging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Pagination Options `yaml:"pagination"`
}

// LoadOptions reads the pagination section of a YAML file. Environment
// references such as ${PAGE_SIZE} are expanded first, after loading the
// given .env files; missing .env files are skipped. Absent keys keep their
// DefaultOptions value.
func LoadOptions(path string, envFiles ...string) (Options, error) {
	if err := loadEnv(envFiles...); err != nil {
		return Options{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read pagination config: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes YAML content holding a pagination section.
func ParseOptions(data []byte) (Options, error) {
	cfg := fileConfig{Pagination: DefaultOptions()}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return Options{}, fmt.Errorf("unmarshal pagination config: %w", err)
	}
	if err := cfg.Pagination.Validate(); err != nil {
		return Options{}, err
	}
	return cfg.Pagination, nil
}

func loadEnv(files ...string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		existing = append(existing, f)
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}
