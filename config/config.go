package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/promptdeck/promptdeck/pkg/provider"
)

const defaultPort = 8080

// Origins allowed to call the API from a browser during development.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// Completer is a configured provider, identified by its registration name.
type Completer struct {
	Name      string
	Completer provider.Completer
}

// Config is built once at startup and passed by reference; it is never
// mutated afterwards.
type Config struct {
	Address string
	Port    int

	Origins []string

	completers []Completer
}

// RegisterCompleter appends a provider. Registration order is the result
// and slide order for every request.
func (cfg *Config) RegisterCompleter(name string, completer provider.Completer) {
	cfg.completers = append(cfg.completers, Completer{
		Name:      name,
		Completer: completer,
	})
}

func (cfg *Config) Completers() []Completer {
	return cfg.completers
}

// FromEnvironment builds the process configuration. A provider without its
// credential variable is skipped, not an error.
func FromEnvironment() (*Config, error) {
	port := defaultPort

	if val := os.Getenv("PORT"); val != "" {
		p, err := strconv.Atoi(val)

		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", val, err)
		}

		port = p
	}

	cfg := &Config{
		Address: fmt.Sprintf(":%d", port),
		Port:    port,

		Origins: defaultOrigins,
	}

	if err := cfg.registerCompleters(); err != nil {
		return nil, err
	}

	return cfg, nil
}
