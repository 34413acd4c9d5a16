package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/validation"
)

const (
	titleRule       = "min=10,max=120"
	descriptionRule = "max=5000"
	slugRule        = "required,max=80,slug"
	assetRule       = "uuid"
	languageRule    = "iso6391"
)

func validateStruct(input interface{}) error {
	if issues := validation.Get().Struct(input); len(issues) > 0 {
		return apperrors.Validation(issues...)
	}
	return nil
}

func invalid(field, message string) error {
	return apperrors.Validation(apperrors.Issue{Field: field, Message: message})
}

// issueCollector gathers field issues for partial updates.
type issueCollector struct {
	issues []apperrors.Issue
}

func (c *issueCollector) check(field string, value interface{}, tag string) {
	c.issues = append(c.issues, validation.Get().Var(field, value, tag)...)
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, apperrors.Issue{Field: field, Message: message})
}

func (c *issueCollector) err() error {
	if len(c.issues) == 0 {
		return nil
	}
	return apperrors.Validation(c.issues...)
}

func (c *issueCollector) title(value *string) {
	if value != nil {
		c.check("title", strings.TrimSpace(*value), titleRule)
	}
}

func (c *issueCollector) description(value Optional[string]) {
	if value.Set && value.Value != nil {
		c.check("description", *value.Value, descriptionRule)
	}
}

func (c *issueCollector) asset(field string, value Optional[string]) {
	if value.Set && value.Value != nil {
		c.check(field, *value.Value, assetRule)
	}
}

func (c *issueCollector) assets(field string, value Optional[[]string]) {
	if !value.Set || value.Value == nil {
		return
	}
	for i, raw := range *value.Value {
		c.check(fmt.Sprintf("%s[%d]", field, i), raw, assetRule)
	}
}

func newID(raw string) uuid.UUID {
	if raw == "" {
		return uuid.New()
	}
	return uuid.MustParse(raw)
}

// parseAsset converts an already validated asset reference.
func parseAsset(raw *string) *uuid.UUID {
	if raw == nil {
		return nil
	}
	id := uuid.MustParse(*raw)
	return &id
}

// parseAssets converts validated asset references. The result is never nil.
func parseAssets(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, len(raw))
	for i, r := range raw {
		ids[i] = uuid.MustParse(r)
	}
	return ids
}
