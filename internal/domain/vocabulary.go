package domain

import (
	"fmt"
	"strings"
)

// Vocabulary provides pure lookups over the static unit registry:
// alias resolution, category membership, and linear factors. It is
// immutable after construction and safe for concurrent use.
type Vocabulary struct {
	categories   []Category
	byName       map[string]Category
	unitCategory map[string]string
}

// NewVocabulary builds the vocabulary from the built-in registry.
// It panics if the registry violates the one-category-per-unit
// invariant, since that is a programming error in the tables.
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{
		categories:   categoryTable,
		byName:       make(map[string]Category, len(categoryTable)),
		unitCategory: make(map[string]string),
	}
	for _, c := range categoryTable {
		v.byName[c.Name] = c
		for _, u := range c.Units {
			if owner, ok := v.unitCategory[u.Name]; ok {
				panic(fmt.Sprintf("unit %q registered in both %q and %q", u.Name, owner, c.Name))
			}
			v.unitCategory[u.Name] = c.Name
		}
	}
	return v
}

// ResolveAlias maps a textual surface form to a canonical unit name.
// Symbol aliases whose case is semantically distinct (b/B, bps/Bps)
// are matched case-sensitively first; every other alias is compared
// case-insensitively. The boolean is false when the alias is unknown;
// callers must treat that as a hard miss, never a default.
func (v *Vocabulary) ResolveAlias(token string) (string, bool) {
	if unit, ok := exactAliasTable[token]; ok {
		return unit, true
	}
	unit, ok := aliasTable[strings.ToLower(strings.TrimSpace(token))]
	return unit, ok
}

// CategoryOf returns the category owning a canonical unit name. A
// false result signals an unrecognized unit, which callers use as the
// cue to try the currency-code heuristic.
func (v *Vocabulary) CategoryOf(unit string) (Category, bool) {
	name, ok := v.unitCategory[unit]
	if !ok {
		return Category{}, false
	}
	return v.byName[name], true
}

// Category returns a registered category by name.
func (v *Vocabulary) Category(name string) (Category, bool) {
	c, ok := v.byName[name]
	return c, ok
}

// Categories returns all registered categories in declaration order.
func (v *Vocabulary) Categories() []Category {
	return v.categories
}

// Factor returns the linear conversion factor of a unit within a
// category. It reports false for unknown pairs and for categories
// whose strategy is not linear-factor.
func (v *Vocabulary) Factor(category, unit string) (float64, bool) {
	c, ok := v.byName[category]
	if !ok {
		return 0, false
	}
	return c.FactorOf(unit)
}
