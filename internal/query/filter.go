// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/neo-engine/internal/catalog"
	"github.com/pdiddy/neo-engine/pkg/types"
)

// Operator is a comparison between an attribute and a filter value.
type Operator string

const (
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpEqual        Operator = "="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
)

// compare reports whether "a op b" holds. NaN never compares true.
func (op Operator) compare(a, b float64) bool {
	switch op {
	case OpGreater:
		return a > b
	case OpGreaterEqual:
		return a >= b
	case OpEqual:
		return a == b
	case OpLess:
		return a < b
	case OpLessEqual:
		return a <= b
	}
	return false
}

func parseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OpGreater, OpGreaterEqual, OpEqual, OpLess, OpLessEqual:
		return op, nil
	}
	return "", fmt.Errorf("%w: unknown operator %q (want >, >=, =, <, <=)", ErrUnsupportedFilter, s)
}

// ValueType is the type a filter value is parsed as.
type ValueType int

const (
	ValueFloat ValueType = iota
	ValueBool
)

// Option describes a filterable attribute: which kind it reads, which
// record field, and how its value is parsed.
type Option struct {
	Name  string    `json:"name" yaml:"name"`
	Reads Kind      `json:"reads" yaml:"reads"`
	Field string    `json:"field" yaml:"field"`
	Type  ValueType `json:"type" yaml:"type"`
}

// options is the table of supported filter options, keyed by name.
var options = map[string]Option{
	"is_hazardous": {Name: "is_hazardous", Reads: KindNEO, Field: catalog.FieldHazardous, Type: ValueBool},
	"diameter":     {Name: "diameter", Reads: KindNEO, Field: catalog.FieldDiameterMinKm, Type: ValueFloat},
	"magnitude":    {Name: "magnitude", Reads: KindNEO, Field: catalog.FieldMagnitude, Type: ValueFloat},
	"distance":     {Name: "distance", Reads: KindPath, Field: catalog.FieldMissKilometers, Type: ValueFloat},
	"velocity":     {Name: "velocity", Reads: KindPath, Field: catalog.FieldKmPerSecond, Type: ValueFloat},
}

// SupportedOptions returns the filter option table sorted by name.
func SupportedOptions() []Option {
	out := make([]Option, 0, len(options))
	for _, o := range options {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// neoValue reads field from an object as a number; booleans are 0 or 1.
func neoValue(neo *types.NearEarthObject, field string) float64 {
	switch field {
	case catalog.FieldHazardous:
		return boolValue(neo.Hazardous)
	case catalog.FieldDiameterMinKm:
		return neo.Diameter.MinKilometers
	case catalog.FieldMagnitude:
		return neo.AbsoluteMagnitude
	}
	panic(fmt.Sprintf("query: no object accessor for field %q", field))
}

// pathValue reads field from an orbit path as a number.
func pathValue(o *types.OrbitPath, field string) float64 {
	switch field {
	case catalog.FieldMissKilometers:
		return o.MissDistanceKilometers
	case catalog.FieldKmPerSecond:
		return o.KilometersPerSecond
	}
	panic(fmt.Sprintf("query: no orbit path accessor for field %q", field))
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Filter is one compiled "option:operator:value" predicate.
type Filter struct {
	Option   Option
	Operator Operator
	Value    float64
	raw      string
}

// ParseFilter compiles a raw "option:operator:value" string.
func ParseFilter(raw string) (Filter, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return Filter{}, fmt.Errorf("%w: filter %q must have the form option:operator:value", ErrInvalidQuery, raw)
	}
	name, opStr, valStr := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])

	opt, ok := options[name]
	if !ok {
		return Filter{}, fmt.Errorf("%w: unknown filter option %q", ErrUnsupportedFilter, name)
	}
	op, err := parseOperator(opStr)
	if err != nil {
		return Filter{}, err
	}

	var value float64
	switch opt.Type {
	case ValueBool:
		b, err := strconv.ParseBool(valStr)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: filter %s: %q is not a boolean", ErrInvalidQuery, name, valStr)
		}
		value = boolValue(b)
	default:
		f, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: filter %s: %q is not a number", ErrInvalidQuery, name, valStr)
		}
		value = f
	}

	return Filter{Option: opt, Operator: op, Value: value, raw: raw}, nil
}

// String returns the filter in option:operator:value form.
func (f Filter) String() string {
	if f.raw != "" {
		return f.raw
	}
	return fmt.Sprintf("%s:%s:%s", f.Option.Name, f.Operator, strconv.FormatFloat(f.Value, 'f', -1, 64))
}

// Match reports whether neo passes the filter. Object attributes are
// compared directly; orbit-path attributes match when at least one of the
// object's orbits satisfies the comparison.
func (f Filter) Match(neo *types.NearEarthObject) bool {
	if f.Option.Reads == KindPath {
		matched := false
		neo.EachOrbit(func(o *types.OrbitPath) bool {
			matched = f.Operator.compare(pathValue(o, f.Option.Field), f.Value)
			return !matched
		})
		return matched
	}
	return f.Operator.compare(neoValue(neo, f.Option.Field), f.Value)
}

// Apply returns the objects in neos that pass the filter, in order.
func (f Filter) Apply(neos []*types.NearEarthObject) []*types.NearEarthObject {
	out := neos[:0:0]
	for _, neo := range neos {
		if f.Match(neo) {
			out = append(out, neo)
		}
	}
	return out
}

// ApplyAll runs filters left to right, each over the survivors of the
// previous one.
func ApplyAll(filters []Filter, neos []*types.NearEarthObject) []*types.NearEarthObject {
	for _, f := range filters {
		neos = f.Apply(neos)
	}
	return neos
}
