package cmd

import (
	"bufio"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	etkerrors "github.com/msto63/etkit/core/errors"
	"github.com/msto63/etkit/internal/report"
	"github.com/msto63/etkit/internal/rule"
	"github.com/msto63/etkit/utils/mathx"
	"github.com/msto63/etkit/utils/optional"
	"github.com/msto63/etkit/utils/slicex"
)

const (
	modeInt     = "int"
	modeFloat   = "float"
	modeDecimal = "decimal"
	modeBigInt  = "bigint"
)

// readTokens returns args, or the whitespace separated words of in when no
// args are given
func readTokens(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var tokens []string
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, etkerrors.OperationFailed(etkerrors.ModuleCLI, "readTokens", err)
	}
	return tokens, nil
}

// column is one typed input sequence with everything an aggregation needs
type column[T any] struct {
	mode   string
	values []T
	arith  slicex.Arithmetic[T]
	match  func(T) bool
	format func(T) string
}

// run executes op over the column
func (c column[T]) run(op string, capacity int) (report.Result, error) {
	result := report.Result{
		Operation: op,
		Mode:      c.mode,
		Input:     len(c.values),
		Matched:   slicex.CountIf(c.values, c.match),
	}

	switch op {
	case "sum":
		sum, err := slicex.SumIfWith(c.values, c.arith, c.match)
		if err != nil {
			return result, err
		}
		result.Value = optional.Some(c.format(sum))

	case "avg":
		avg, ok, err := slicex.AvgIfWith(c.values, c.arith, c.match)
		if err != nil {
			return result, err
		}
		if ok {
			result.Value = optional.Some(c.format(avg))
		}

	case "unique":
		unique, err := slicex.MatchUnique(c.values, c.match)
		if err != nil {
			return result, err
		}
		result.Unique = optional.Some(unique)

	case "copy":
		copied, err := c.copy(capacity)
		if err != nil {
			return result, err
		}
		result.Items = make([]string, len(copied))
		for i, v := range copied {
			result.Items[i] = c.format(v)
		}

	default:
		return result, etkerrors.InvalidArgument(etkerrors.ModuleCLI, "run", "operation", "sum, avg, unique or copy")
	}

	return result, nil
}

// copy uses a fixed buffer when capacity is positive and a growable slice otherwise
func (c column[T]) copy(capacity int) ([]T, error) {
	if capacity > 0 {
		buffer := make([]T, capacity)
		written, err := slicex.CopyToIf[T](c.values, slicex.NewFixedCollector(buffer), c.match)
		if err != nil {
			return nil, err
		}
		return buffer[:written], nil
	}

	copied := make([]T, 0, len(c.values))
	if err := slicex.CopyToSliceIf(c.values, &copied, c.match); err != nil {
		return nil, err
	}
	return copied, nil
}

// aggregate parses tokens in the narrowest mode that fits them and runs op.
// Integers that do not fit int64, or whose matching sum would overflow it,
// run as bigint: exact decimals with truncating division.
func aggregate(op string, tokens []string, r *rule.Rule, decimal bool, precision, capacity int) (report.Result, error) {
	if decimal {
		values, err := parseAll(tokens, mathx.NewDecimal)
		if err != nil {
			return report.Result{}, err
		}
		return column[mathx.Decimal]{
			mode:   modeDecimal,
			values: values,
			arith:  mathx.DecimalArithmetic{},
			match:  r.Match,
			format: func(d mathx.Decimal) string { return formatDecimal(d, precision) },
		}.run(op, capacity)
	}

	matchInt := rule.Predicate[int64](r)
	ints, err := parseAll(tokens, parseInt)
	if err == nil && !sumOverflows(ints, matchInt) {
		return column[int64]{
			mode:   modeInt,
			values: ints,
			arith:  slicex.NumberArithmetic[int64]{},
			match:  matchInt,
			format: func(v int64) string { return strconv.FormatInt(v, 10) },
		}.run(op, capacity)
	}

	if err == nil || allIntegers(tokens) {
		values, err := parseAll(tokens, mathx.NewDecimal)
		if err != nil {
			return report.Result{}, err
		}
		return column[mathx.Decimal]{
			mode:   modeBigInt,
			values: values,
			arith:  integerArithmetic{},
			match:  r.Match,
			format: mathx.Decimal.String,
		}.run(op, capacity)
	}

	floats, err := parseAll(tokens, parseFloat)
	if err != nil {
		return report.Result{}, err
	}
	return column[float64]{
		mode:   modeFloat,
		values: floats,
		arith:  slicex.NumberArithmetic[float64]{},
		match:  rule.Predicate[float64](r),
		format: func(v float64) string { return strconv.FormatFloat(v, 'f', precision, 64) },
	}.run(op, capacity)
}

// integerArithmetic is exact decimal arithmetic with integer division
type integerArithmetic struct {
	mathx.DecimalArithmetic
}

// Divide truncates toward zero like int64 division
func (a integerArithmetic) Divide(sum mathx.Decimal, n int) mathx.Decimal {
	return a.DecimalArithmetic.Divide(sum, n).Truncate(0)
}

// sumOverflows reports whether adding up the matching values leaves int64
func sumOverflows(values []int64, match func(int64) bool) bool {
	var sum int64
	for _, v := range values {
		if match != nil && !match(v) {
			continue
		}
		if (v > 0 && sum > math.MaxInt64-v) || (v < 0 && sum < math.MinInt64-v) {
			return true
		}
		sum += v
	}
	return false
}

// allIntegers reports whether every token is a base 10 integer of any size
func allIntegers(tokens []string) bool {
	for _, token := range tokens {
		if _, ok := new(big.Int).SetString(strings.TrimSpace(token), 10); !ok {
			return false
		}
	}
	return true
}

func parseAll[T any](tokens []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(tokens))
	for _, token := range tokens {
		v, err := parse(token)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, etkerrors.InvalidFormat(etkerrors.ModuleCLI, "parseInt", s, "integer")
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, etkerrors.InvalidFormat(etkerrors.ModuleCLI, "parseFloat", s, "number")
	}
	return v, nil
}

func formatDecimal(d mathx.Decimal, precision int) string {
	if precision < 0 {
		return d.String()
	}
	return d.StringFixed(precision)
}
