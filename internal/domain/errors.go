// Package domain defines the unit-conversion model: categories, units,
// the alias vocabulary, and the errors shared across the application.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrAliasNotFound is returned when a textual alias does not map to
	// any canonical unit name.
	ErrAliasNotFound = errors.New("unit alias not found")

	// ErrCategoryNotFound is returned when a unit name is known but no
	// category claims it, or when a category name itself is unknown.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrUnresolvableCategory is returned when two unit names share no
	// category and are not plausible currency codes.
	ErrUnresolvableCategory = errors.New("units do not share a convertible category")

	// ErrMissingValue is returned when no numeric value could be
	// extracted from input text.
	ErrMissingValue = errors.New("no numeric value detected")

	// ErrMissingFromUnit is returned when no source unit could be
	// extracted from input text.
	ErrMissingFromUnit = errors.New("no source unit detected")

	// ErrMissingToUnit is returned when no target unit could be
	// extracted from input text.
	ErrMissingToUnit = errors.New("no target unit detected")
)
