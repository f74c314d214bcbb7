// Package schema validates incoming form payloads against embedded
// JSON Schema documents before they reach the service layer.
package schema

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/qri-io/jsonschema"
)

//go:embed contact.schema.json
var contactSchemaJSON []byte

//go:embed hero.schema.json
var heroSchemaJSON []byte

// Validator holds the compiled form schemas.
type Validator struct {
	contact *jsonschema.Schema
	hero    *jsonschema.Schema
}

// NewValidator compiles the embedded schemas.
func NewValidator() (*Validator, error) {
	contact, err := compile(contactSchemaJSON)
	if err != nil {
		return nil, fmt.Errorf("compile contact schema: %w", err)
	}
	hero, err := compile(heroSchemaJSON)
	if err != nil {
		return nil, fmt.Errorf("compile hero schema: %w", err)
	}
	return &Validator{contact: contact, hero: hero}, nil
}

func compile(raw []byte) (*jsonschema.Schema, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(raw, rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// ValidateContact checks body against the full contact-form schema.
// It returns a human-readable message describing the first failures,
// or "" when the body is valid.
func (v *Validator) ValidateContact(ctx context.Context, body []byte) (string, error) {
	return validate(ctx, v.contact, body)
}

// ValidateHero checks body against the simplified hero-form schema.
func (v *Validator) ValidateHero(ctx context.Context, body []byte) (string, error) {
	return validate(ctx, v.hero, body)
}

func validate(ctx context.Context, rs *jsonschema.Schema, body []byte) (string, error) {
	// ValidateBytes treats unparseable JSON as an internal error; report
	// it as a validation failure instead so clients get a 400.
	if !json.Valid(body) {
		return "body must be valid JSON", nil
	}

	keyErrs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		return "", fmt.Errorf("schema validation: %w", err)
	}
	if len(keyErrs) == 0 {
		return "", nil
	}

	msgs := make([]string, 0, len(keyErrs))
	for _, ke := range keyErrs {
		field := strings.TrimPrefix(ke.PropertyPath, "/")
		if field == "" {
			msgs = append(msgs, ke.Message)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, ke.Message))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; "), nil
}
