package skeleton

import (
	"math"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.rounding != DefaultRounding {
		t.Errorf("rounding = %v, want %v", o.rounding, DefaultRounding)
	}
	if !o.closed {
		t.Error("default must treat inputs as closed rings")
	}
	if !o.splits {
		t.Error("default must detect splits")
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		check func(o options) bool
	}{
		{"WithRounding", WithRounding(math.Pi / 6), func(o options) bool {
			return o.rounding == math.Pi/6
		}},
		{"WithoutRounding", WithoutRounding(), func(o options) bool {
			return o.rounding == 0
		}},
		{"Open", Open(), func(o options) bool {
			return !o.closed
		}},
		{"WithoutSplits", WithoutSplits(), func(o options) bool {
			return !o.splits
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if !tt.check(o) {
				t.Errorf("option left %+v", o)
			}
		})
	}
}
