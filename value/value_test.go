package value

import "testing"

func TestIsFalsey(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		falsey  bool
	}{
		{"null", Null(), true},
		{"false", Boolean(false), true},
		{"true", Boolean(true), false},
		{"zero", Number(0), false},
		{"nonzero", Number(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.IsFalsey(); got != tt.falsey {
				t.Errorf("IsFalsey() = %v, want %v", got, tt.falsey)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Null(), "null"},
		{Boolean(true), "true"},
		{Boolean(false), "false"},
		{Number(7), "7"},
		{Number(1.2), "1.2"},
		{Number(-4), "-4"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("Value.String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestPredicates(t *testing.T) {
	if !Null().IsNull() {
		t.Error("Null().IsNull() = false, want true")
	}
	if !Boolean(true).IsBoolean() {
		t.Error("Boolean(true).IsBoolean() = false, want true")
	}
	if !Number(1).IsNumber() {
		t.Error("Number(1).IsNumber() = false, want true")
	}
}
