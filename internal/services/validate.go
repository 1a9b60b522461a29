package services

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"adsnap/internal/domain"
)

var hexColorRegexp = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domain.Invalid(field, "is required")
	}
	return value, nil
}

func requireImage(field string, img Image) error {
	if img.Empty() {
		return domain.Invalid(field, "image is required")
	}
	return nil
}

func intRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return domain.Invalid(field, "must be between %d and %d, got %d", lo, hi, v)
	}
	return nil
}

// oneOf case-folds value and checks it against allowed. An empty value
// resolves to fallback.
func oneOf(field, value, fallback string, allowed []string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	folded := cases.Fold().String(value)
	if slices.Contains(allowed, folded) {
		return folded, nil
	}
	return "", domain.Invalid(field, "must be one of %s, got %q", strings.Join(allowed, ", "), value)
}

// color accepts #RGB, #RRGGBB or "transparent". Empty resolves to fallback.
func color(field, value, fallback string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	if cases.Fold().String(value) == "transparent" {
		return "transparent", nil
	}
	if !hexColorRegexp.MatchString(value) {
		return "", domain.Invalid(field, "must be a hex color like #FFFFFF, got %q", value)
	}
	return strings.ToUpper(value), nil
}
