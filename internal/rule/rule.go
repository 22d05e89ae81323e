// File: rule.go
// Title: Rule Expressions
// Description: Parses --where expressions into numeric predicates. Bounds are exact
//              decimals and named rules resolve through a Registry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package rule turns textual filter expressions into predicates.
//
// An expression is a comma separated conjunction of terms:
//
//	all | even | odd | positive | negative | zero | nonzero
//	eq:N | ne:N | gt:N | ge:N | lt:N | le:N | between:A:B
//	not:<term> | @name
//
// Numbers are exact decimals ("2.5", "1/3", "-7"). between is inclusive.
// @name refers to a named expression supplied through a Registry.
package rule

import (
	"fmt"
	"strings"

	etkerrors "github.com/msto63/etkit/core/errors"
	"github.com/msto63/etkit/utils/mathx"
	"github.com/msto63/etkit/utils/optional"
	"github.com/msto63/etkit/utils/slicex"
)

// maxNesting bounds @name expansion
const maxNesting = 16

// Rule is a compiled expression
type Rule struct {
	expr  string
	match func(mathx.Decimal) bool
}

// All matches every value
var All = &Rule{expr: "all", match: func(mathx.Decimal) bool { return true }}

// Match reports whether v satisfies the rule
func (r *Rule) Match(v mathx.Decimal) bool {
	return r.match(v)
}

// String returns the source expression
func (r *Rule) String() string {
	return r.expr
}

// Registry resolves @name references
type Registry struct {
	named map[string]string
}

// NewRegistry returns a registry over name -> expression
func NewRegistry(named map[string]string) *Registry {
	copied := make(map[string]string, len(named))
	for name, expr := range named {
		copied[strings.ToLower(strings.TrimSpace(name))] = expr
	}
	return &Registry{named: copied}
}

// Lookup returns the expression registered under name
func (reg *Registry) Lookup(name string) optional.Optional[string] {
	if reg == nil {
		return optional.Empty[string]()
	}
	expr, ok := reg.named[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return optional.Empty[string]()
	}
	return optional.Some(expr)
}

// Len returns the number of registered expressions
func (reg *Registry) Len() int {
	if reg == nil {
		return 0
	}
	return len(reg.named)
}

// Parse compiles expr without named rules
func Parse(expr string) (*Rule, error) {
	return (*Registry)(nil).Parse(expr)
}

// Parse compiles expr, resolving @name terms against reg.
// An empty expression matches everything.
func (reg *Registry) Parse(expr string) (*Rule, error) {
	match, err := reg.parse(expr, 0)
	if err != nil {
		return nil, err
	}
	return &Rule{expr: strings.TrimSpace(expr), match: match}, nil
}

func (reg *Registry) parse(expr string, depth int) (func(mathx.Decimal) bool, error) {
	if strings.TrimSpace(expr) == "" {
		return All.match, nil
	}

	terms := strings.Split(expr, ",")
	matchers := make([]func(mathx.Decimal) bool, 0, len(terms))
	for _, term := range terms {
		m, err := reg.parseTerm(strings.TrimSpace(term), depth)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}

	if len(matchers) == 1 {
		return matchers[0], nil
	}
	return func(v mathx.Decimal) bool {
		for _, m := range matchers {
			if !m(v) {
				return false
			}
		}
		return true
	}, nil
}

func (reg *Registry) parseTerm(term string, depth int) (func(mathx.Decimal) bool, error) {
	if term == "" {
		return nil, etkerrors.InvalidFormat(etkerrors.ModuleRule, "Parse", term, "non-empty term")
	}

	if strings.HasPrefix(term, "@") {
		name := term[1:]
		if depth >= maxNesting {
			return nil, etkerrors.InvalidFormat(etkerrors.ModuleRule, "Parse", term,
				fmt.Sprintf("named rules nested at most %d deep", maxNesting))
		}
		expr, err := reg.Lookup(name).OrElseError(func() error {
			return etkerrors.NotFound(etkerrors.ModuleRule, "Parse", "rule @"+name)
		})
		if err != nil {
			return nil, err
		}
		return reg.parse(expr, depth+1)
	}

	op, args, _ := strings.Cut(term, ":")
	op = strings.ToLower(op)

	if op == "not" {
		inner, err := reg.parseTerm(strings.TrimSpace(args), depth)
		if err != nil {
			return nil, err
		}
		return func(v mathx.Decimal) bool { return !inner(v) }, nil
	}

	switch op {
	case "all":
		return noArgs(term, args, All.match)
	case "even":
		return noArgs(term, args, func(v mathx.Decimal) bool { return isEven(v) })
	case "odd":
		return noArgs(term, args, func(v mathx.Decimal) bool { return v.IsInteger() && !isEven(v) })
	case "positive":
		return noArgs(term, args, func(v mathx.Decimal) bool { return v.Sign() > 0 })
	case "negative":
		return noArgs(term, args, func(v mathx.Decimal) bool { return v.Sign() < 0 })
	case "zero":
		return noArgs(term, args, func(v mathx.Decimal) bool { return v.IsZero() })
	case "nonzero":
		return noArgs(term, args, func(v mathx.Decimal) bool { return !v.IsZero() })
	case "eq", "ne", "gt", "ge", "lt", "le":
		bound, err := parseBound(term, args)
		if err != nil {
			return nil, err
		}
		return compare(op, bound), nil
	case "between":
		lowText, highText, ok := strings.Cut(args, ":")
		if !ok {
			return nil, etkerrors.InvalidFormat(etkerrors.ModuleRule, "Parse", term, "between:LOW:HIGH")
		}
		low, err := parseBound(term, lowText)
		if err != nil {
			return nil, err
		}
		high, err := parseBound(term, highText)
		if err != nil {
			return nil, err
		}
		if high.LessThan(low) {
			return nil, etkerrors.InvalidFormat(etkerrors.ModuleRule, "Parse", term, "between:LOW:HIGH with LOW <= HIGH")
		}
		return func(v mathx.Decimal) bool {
			return !v.LessThan(low) && !v.GreaterThan(high)
		}, nil
	default:
		return nil, etkerrors.InvalidFormat(etkerrors.ModuleRule, "Parse", term, "known rule operator")
	}
}

func noArgs(term, args string, m func(mathx.Decimal) bool) (func(mathx.Decimal) bool, error) {
	if args != "" {
		return nil, etkerrors.InvalidFormat(etkerrors.ModuleRule, "Parse", term, "operator without argument")
	}
	return m, nil
}

func parseBound(term, text string) (mathx.Decimal, error) {
	if strings.TrimSpace(text) == "" {
		return mathx.Decimal{}, etkerrors.InvalidFormat(etkerrors.ModuleRule, "Parse", term, "OP:NUMBER")
	}
	bound, err := mathx.NewDecimal(text)
	if err != nil {
		return mathx.Decimal{}, etkerrors.InvalidFormat(etkerrors.ModuleRule, "Parse", term, "OP:NUMBER")
	}
	return bound, nil
}

func compare(op string, bound mathx.Decimal) func(mathx.Decimal) bool {
	return func(v mathx.Decimal) bool {
		c := v.Compare(bound)
		switch op {
		case "eq":
			return c == 0
		case "ne":
			return c != 0
		case "gt":
			return c > 0
		case "ge":
			return c >= 0
		case "lt":
			return c < 0
		default:
			return c <= 0
		}
	}
}

var two = mathx.NewDecimalFromInt(2)

func isEven(v mathx.Decimal) bool {
	if !v.IsInteger() {
		return false
	}
	half := v.MustDivide(two)
	return half.IsInteger()
}

// Predicate adapts r to a built-in numeric type. NaN and infinities match nothing.
func Predicate[T slicex.Number](r *Rule) func(T) bool {
	return func(v T) bool {
		d, ok := toDecimal(v)
		return ok && r.Match(d)
	}
}

func toDecimal[T slicex.Number](v T) (mathx.Decimal, bool) {
	var one T = 1
	switch {
	case one/2 != 0: // float kinds
		d, err := mathx.NewDecimalFromFloat(float64(v))
		return d, err == nil
	case v < 0:
		return mathx.NewDecimalFromInt(int64(v)), true
	default:
		return mathx.NewDecimalFromUint64(uint64(v)), true
	}
}
