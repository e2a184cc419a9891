// Package content embeds the default public portfolio shown before the owner
// saves any posts or experience entries of their own.
package content

import (
	_ "embed"
	"fmt"

	"portfolio-be/internal/entity"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultPortfolio []byte

// Default decodes the embedded portfolio.
func Default() (*entity.Portfolio, error) {
	return Parse(defaultPortfolio)
}

// Parse decodes a portfolio document and validates its records.
func Parse(raw []byte) (*entity.Portfolio, error) {
	var p entity.Portfolio
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}

	validate := validator.New()
	for i := range p.Writing {
		if err := validate.Struct(&p.Writing[i]); err != nil {
			return nil, fmt.Errorf("writing %d: %w", i, err)
		}
	}
	for i := range p.Experience {
		if err := validate.Struct(&p.Experience[i]); err != nil {
			return nil, fmt.Errorf("experience %d: %w", i, err)
		}
	}
	return &p, nil
}
