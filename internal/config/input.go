package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// maxRoundingDigit bounds the rounding digit accepted from a catalog
const maxRoundingDigit = 10

// CatalogLoader loads the rate catalog from a file and the environment
type CatalogLoader struct {
	// Environment replaces the process environment when non-nil
	Environment map[string]string
}

// NewCatalogLoader creates a loader reading the process environment
func NewCatalogLoader() *CatalogLoader {
	return &CatalogLoader{}
}

// Load returns the catalog at path, or the defaults when path is empty.
// Environment overrides are applied before validation in both cases.
func (cl *CatalogLoader) Load(path string) (*domain.RateCatalog, error) {
	if path != "" {
		return cl.LoadFromFile(path)
	}

	catalog := domain.DefaultRateCatalog()
	if err := cl.finish(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// LoadFromFile loads a YAML or JSON catalog. Keys missing from the file keep
// their default values.
func (cl *CatalogLoader) LoadFromFile(filename string) (*domain.RateCatalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	catalog := domain.DefaultRateCatalog()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", filename, err)
		}
	}

	if err := cl.finish(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (cl *CatalogLoader) finish(catalog *domain.RateCatalog) error {
	if err := env.ParseWithOptions(catalog, env.Options{Environment: cl.Environment}); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	if err := ValidateCatalog(catalog); err != nil {
		return fmt.Errorf("catalog validation failed: %w", err)
	}
	return nil
}

// ValidateCatalog validates a loaded catalog
func ValidateCatalog(c *domain.RateCatalog) error {
	if c.RoundingDigit < 0 || c.RoundingDigit > maxRoundingDigit {
		return fmt.Errorf("rounding digit must be between 0 and %d, got %d", maxRoundingDigit, c.RoundingDigit)
	}

	minRate := decimal.NewFromInt(-100)
	if c.BankInterest.LessThanOrEqual(minRate) {
		return fmt.Errorf("bank interest must be greater than -100, got %s", c.BankInterest)
	}
	if c.MarketInterest.LessThanOrEqual(minRate) {
		return fmt.Errorf("market interest must be greater than -100, got %s", c.MarketInterest)
	}

	if len(c.Horizons) == 0 {
		return fmt.Errorf("no projection horizons provided")
	}
	for i, h := range c.Horizons {
		if h <= 0 {
			return fmt.Errorf("horizon %d must be positive, got %d", i, h)
		}
	}

	if len(c.LifeEventTypes) == 0 {
		return fmt.Errorf("no life event types provided")
	}

	if err := validateChildEvent(&c.ChildEvent); err != nil {
		return fmt.Errorf("child event validation failed: %w", err)
	}
	if c.ChildCost.Years <= 0 {
		return fmt.Errorf("child cost years must be positive")
	}
	for _, n := range c.ChildCost.Children {
		if n <= 0 {
			return fmt.Errorf("child cost children must be positive, got %d", n)
		}
	}

	return nil
}

func validateChildEvent(a *domain.ChildEventAssumptions) error {
	if a.Years <= 0 {
		return fmt.Errorf("years must be positive")
	}
	if a.Children < 0 {
		return fmt.Errorf("children cannot be negative")
	}
	if a.AnnualExpensesStart.LessThan(decimal.Zero) {
		return fmt.Errorf("annual expenses cannot be negative")
	}
	return nil
}

// LoadRequest decodes a request file into v. Files ending in .json use the
// JSON field names of the HTTP API; anything else is read as YAML.
func LoadRequest(filename string, v any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		err = json.Unmarshal(data, v)
	} else {
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("failed to parse request %s: %w", filename, err)
	}
	return nil
}
