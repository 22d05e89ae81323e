// File: aggregate_test.go
// Title: Conditional Aggregation Tests
// Description: Tests for SumIf, AvgIf, MatchUnique, CountIf, CopyToIf and the
//              collectors, including failure and panic paths.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package slicex

import (
	"errors"
	"math"
	"slices"
	"testing"

	etkerror "github.com/msto63/etkit/core/error"
	"github.com/msto63/etkit/utils/mathx"
)

func isEven(n int) bool { return n%2 == 0 }

func TestSumIf(t *testing.T) {
	tests := []struct {
		name      string
		source    []int
		predicate func(int) bool
		want      int
	}{
		{"even numbers", []int{1, 2, 3, 4, 5}, isEven, 6},
		{"nil predicate sums all", []int{1, 2, 3, 4, 5}, nil, 15},
		{"nothing matches", []int{1, 3, 5}, isEven, 0},
		{"empty source", []int{}, isEven, 0},
		{"nil source", nil, nil, 0},
		{"negative values", []int{-4, 3, -2}, isEven, -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumIf(tt.source, tt.predicate); got != tt.want {
				t.Errorf("SumIf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSumIfFloat(t *testing.T) {
	got := SumIf([]float64{0.5, 1.5, -2.0, 4.0}, func(f float64) bool { return f > 0 })
	if got != 6.0 {
		t.Errorf("SumIf() = %v, want 6", got)
	}
}

func TestSumIfWith(t *testing.T) {
	values := []mathx.Decimal{
		mathx.MustNewDecimal("0.1"),
		mathx.MustNewDecimal("0.2"),
		mathx.MustNewDecimal("-5"),
	}

	sum, err := SumIfWith(values, mathx.DecimalArithmetic{}, func(d mathx.Decimal) bool { return d.Sign() > 0 })
	if err != nil {
		t.Fatalf("SumIfWith() error = %v", err)
	}
	if !sum.Equal(mathx.MustNewDecimal("0.3")) {
		t.Errorf("SumIfWith() = %s, want exactly 0.3", sum)
	}

	_, err = SumIfWith[int](nil, nil, nil)
	if !etkerror.HasCode(err, etkerror.CodeInvalidArgument) {
		t.Errorf("nil arithmetic error = %v", err)
	}
}

func TestAvgIf(t *testing.T) {
	tests := []struct {
		name      string
		source    []int
		predicate func(int) bool
		want      int
		wantOK    bool
	}{
		{"even numbers", []int{1, 2, 3, 4, 5}, isEven, 3, true},
		{"nil predicate is the true average", []int{1, 2, 3, 4, 5}, nil, 3, true},
		{"integer division truncates", []int{1, 2}, nil, 1, true},
		{"nothing matches", []int{1, 3, 5}, isEven, 0, false},
		{"empty source", nil, nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AvgIf(tt.source, tt.predicate)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AvgIf() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAvgIfNarrowIntegers(t *testing.T) {
	// 256 matches do not fit in uint8 and 128 or more do not fit in int8
	zeros := make([]uint8, 256)

	spiked := make([]uint8, 256)
	spiked[0] = 200

	halfOnes := make([]int8, 200)
	for i := 0; i < 100; i++ {
		halfOnes[i] = 1
	}

	minusOnes := make([]int8, 128)
	for i := range minusOnes {
		minusOnes[i] = -1
	}

	t.Run("uint8 zeros", func(t *testing.T) {
		if got, ok := AvgIf(zeros, nil); !ok || got != 0 {
			t.Errorf("AvgIf() = (%d, %v), want (0, true)", got, ok)
		}
	})

	t.Run("uint8 truncates", func(t *testing.T) {
		if got, ok := AvgIf(spiked, nil); !ok || got != 0 {
			t.Errorf("AvgIf() = (%d, %v), want (0, true)", got, ok)
		}
	})

	t.Run("int8 keeps sign", func(t *testing.T) {
		if got, ok := AvgIf(halfOnes, nil); !ok || got != 0 {
			t.Errorf("AvgIf() = (%d, %v), want (0, true)", got, ok)
		}
	})

	t.Run("int8 negative", func(t *testing.T) {
		if got, ok := AvgIf(minusOnes, nil); !ok || got != -1 {
			t.Errorf("AvgIf() = (%d, %v), want (-1, true)", got, ok)
		}
	})

	t.Run("uint16 wide count", func(t *testing.T) {
		var arith NumberArithmetic[uint16]
		if got := arith.Divide(65535, 70000); got != 0 {
			t.Errorf("Divide() = %d, want 0", got)
		}
	})
}

func TestAvgIfMatchesSumOverCount(t *testing.T) {
	source := []float64{1.5, 2.5, 3.25, 10, -7, 0.75}
	predicates := map[string]func(float64) bool{
		"positive": func(f float64) bool { return f > 0 },
		"small":    func(f float64) bool { return math.Abs(f) < 3 },
		"all":      nil,
	}

	for name, predicate := range predicates {
		t.Run(name, func(t *testing.T) {
			avg, ok := AvgIf(source, predicate)
			count := CountIf(source, predicate)
			if !ok || count == 0 {
				t.Fatalf("AvgIf() ok = %v, count = %d", ok, count)
			}
			want := SumIf(source, predicate) / float64(count)
			if avg != want {
				t.Errorf("AvgIf() = %v, want %v", avg, want)
			}
		})
	}
}

func TestAvgIfWith(t *testing.T) {
	values := []mathx.Decimal{
		mathx.MustNewDecimal("1"),
		mathx.MustNewDecimal("2"),
		mathx.MustNewDecimal("2"),
	}

	avg, ok, err := AvgIfWith(values, mathx.DecimalArithmetic{}, nil)
	if err != nil || !ok {
		t.Fatalf("AvgIfWith() = %s, %v, %v", avg, ok, err)
	}
	if !avg.Equal(mathx.MustNewDecimal("5/3")) {
		t.Errorf("AvgIfWith() = %s, want exactly 5/3", avg)
	}

	_, ok, err = AvgIfWith(values, mathx.DecimalArithmetic{}, func(d mathx.Decimal) bool { return d.Sign() < 0 })
	if err != nil || ok {
		t.Errorf("AvgIfWith() with no matches = %v, %v", ok, err)
	}

	_, _, err = AvgIfWith(values, nil, nil)
	if !etkerror.HasCode(err, etkerror.CodeInvalidArgument) {
		t.Errorf("nil arithmetic error = %v", err)
	}
}

func TestMatchUnique(t *testing.T) {
	is2 := func(n int) bool { return n == 2 }

	tests := []struct {
		name   string
		source []int
		want   bool
	}{
		{"exactly one", []int{1, 2, 3, 4, 5}, true},
		{"two matches", []int{1, 2, 3, 2}, false},
		{"no match", []int{1, 3}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchUnique(tt.source, is2)
			if err != nil {
				t.Fatalf("MatchUnique() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MatchUnique() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("nil predicate", func(t *testing.T) {
		_, err := MatchUnique([]int{1}, nil)
		if !etkerror.HasCode(err, etkerror.CodeInvalidArgument) {
			t.Errorf("error = %v, want INVALID_ARGUMENT", err)
		}
	})

	t.Run("evaluates every element", func(t *testing.T) {
		calls := 0
		_, _ = MatchUnique([]int{2, 2, 2, 2}, func(n int) bool {
			calls++
			return n == 2
		})
		if calls != 4 {
			t.Errorf("predicate called %d times, want 4", calls)
		}
	})
}

func TestCopyToIf(t *testing.T) {
	t.Run("slice collector keeps order and prior contents", func(t *testing.T) {
		target := []int{99}
		written, err := CopyToIf([]int{1, 2, 3, 4, 5, 6}, NewSliceCollector(&target), isEven)
		if err != nil {
			t.Fatalf("CopyToIf() error = %v", err)
		}
		if written != 3 || !slices.Equal(target, []int{99, 2, 4, 6}) {
			t.Errorf("CopyToIf() = %d, target %v", written, target)
		}
	})

	t.Run("fixed collector overwrites from index 0", func(t *testing.T) {
		target := []int{7, 7, 7, 7}
		collector := NewFixedCollector(target)
		written, err := CopyToIf([]int{1, 2, 3, 4}, collector, isEven)
		if err != nil {
			t.Fatalf("CopyToIf() error = %v", err)
		}
		if written != 2 || !slices.Equal(target, []int{2, 4, 7, 7}) {
			t.Errorf("CopyToIf() = %d, target %v", written, target)
		}
		if collector.Len() != 2 || collector.Cap() != 4 {
			t.Errorf("Len() = %d, Cap() = %d", collector.Len(), collector.Cap())
		}
	})

	t.Run("capacity exceeded resets target", func(t *testing.T) {
		target := []int{7, 7}
		written, err := CopyToIf([]int{2, 4, 6}, NewFixedCollector(target), nil)

		if !etkerror.HasCode(err, etkerror.CodeCapacityExceeded) {
			t.Fatalf("error = %v, want CAPACITY_EXCEEDED", err)
		}
		if written != 0 {
			t.Errorf("written = %d, want 0", written)
		}
		if !slices.Equal(target, []int{0, 0}) {
			t.Errorf("target not reset: %v", target)
		}

		var etkErr *etkerror.Error
		if !errors.As(err, &etkErr) {
			t.Fatalf("error is not an etkit error: %v", err)
		}
		if etkErr.Operation() != "slicex.CopyToIf" {
			t.Errorf("operation = %q", etkErr.Operation())
		}
		if index, _ := etkErr.Detail("index"); index != 2 {
			t.Errorf("index detail = %v, want 2", index)
		}
	})

	t.Run("panicking predicate resets target", func(t *testing.T) {
		target := []int{1}
		collector := NewSliceCollector(&target)

		func() {
			defer func() {
				if recover() == nil {
					t.Error("panic was swallowed")
				}
			}()
			_, _ = CopyToIf([]int{2, 4, 5}, collector, func(n int) bool {
				if n == 5 {
					panic("boom")
				}
				return true
			})
		}()

		if !slices.Equal(target, []int{1}) {
			t.Errorf("target not reset: %v", target)
		}
	})

	t.Run("nil target", func(t *testing.T) {
		_, err := CopyToIf[int]([]int{1}, nil, nil)
		if !etkerror.HasCode(err, etkerror.CodeInvalidArgument) {
			t.Errorf("error = %v, want INVALID_ARGUMENT", err)
		}
	})

	t.Run("written equals match count", func(t *testing.T) {
		source := []int{5, 8, 1, 12, 3, 6, 6}
		var target []int
		written, err := CopyToIf(source, NewSliceCollector(&target), isEven)
		if err != nil {
			t.Fatalf("CopyToIf() error = %v", err)
		}
		if written != CountIf(source, isEven) || len(target) != written {
			t.Errorf("written = %d, len = %d, count = %d", written, len(target), CountIf(source, isEven))
		}
	})
}

func TestCopyToSliceIf(t *testing.T) {
	var target []string
	err := CopyToSliceIf([]string{"a", "bb", "ccc"}, &target, func(s string) bool { return len(s) > 1 })
	if err != nil {
		t.Fatalf("CopyToSliceIf() error = %v", err)
	}
	if !slices.Equal(target, []string{"bb", "ccc"}) {
		t.Errorf("target = %v", target)
	}

	if err := CopyToSliceIf[string](nil, nil, nil); !etkerror.HasCode(err, etkerror.CodeInvalidArgument) {
		t.Errorf("nil target error = %v", err)
	}
}

func TestSliceCollectorReset(t *testing.T) {
	target := make([]int, 1, 8)
	collector := NewSliceCollector(&target)
	_ = collector.Add(3)
	_ = collector.Add(4)

	collector.Reset()
	if len(target) != 1 || collector.Len() != 0 {
		t.Errorf("after Reset len = %d, Len() = %d", len(target), collector.Len())
	}
	if backing := target[:3]; backing[1] != 0 || backing[2] != 0 {
		t.Errorf("appended slots not cleared: %v", backing)
	}
}

func TestNumberArithmetic(t *testing.T) {
	ints := NumberArithmetic[int]{}
	if got := ints.Divide(ints.Add(7, 0), 2); got != 3 {
		t.Errorf("int Divide = %d, want 3", got)
	}

	floats := NumberArithmetic[float32]{}
	if got := floats.Divide(7, 2); got != 3.5 {
		t.Errorf("float32 Divide = %v, want 3.5", got)
	}

	if got := (NumberArithmetic[uint8]{}).Zero(); got != 0 {
		t.Errorf("Zero() = %d", got)
	}
}
