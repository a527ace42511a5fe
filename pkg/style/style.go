// Package style resolves logical style names to concrete CSS classes.
//
// A Table plays the part of a CSS-module import: components ask for
// "features" or "featureSvg" and get back whatever class the stylesheet
// build produced for that name. Tables are plain data and are passed to
// components explicitly.
package style

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Logical style keys used by the homepage.
const (
	Features   = "features"
	FeatureSvg = "featureSvg"
)

// Table maps logical style keys to class names.
type Table map[string]string

// DefaultTable maps every homepage key to a class of the same name, which
// matches a stylesheet compiled without name scoping.
func DefaultTable() Table {
	return Table{
		Features:   "features",
		FeatureSvg: "featureSvg",
	}
}

// Resolve returns the class for key, or "" when the key is unknown.
func (t Table) Resolve(key string) string {
	return t[key]
}

// Merge returns a new table with other's entries laid over t.
func (t Table) Merge(other Table) Table {
	out := make(Table, len(t)+len(other))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// LoadTable reads a CSS-module class map such as
//
//	{"features": "features_x1y2", "featureSvg": "featureSvg_a9b8"}
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("style: parse %s: %w", path, err)
	}
	return t, nil
}

// Clsx composes a class string from its arguments, in order.
//
// Strings are used as-is, []string and []any are flattened, and
// map[string]bool contributes its true keys in sorted order. Empty strings,
// false entries and unsupported values are dropped, and the surviving names
// are joined by single spaces.
func Clsx(args ...any) string {
	var parts []string
	appendClasses(&parts, args)
	return strings.Join(parts, " ")
}

func appendClasses(parts *[]string, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			*parts = append(*parts, strings.Fields(v)...)
		case []string:
			for _, s := range v {
				*parts = append(*parts, strings.Fields(s)...)
			}
		case []any:
			appendClasses(parts, v)
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k, on := range v {
				if on && k != "" {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			*parts = append(*parts, keys...)
		}
	}
}
