package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:     PhaseDecode,
				Kind:      KindTypeMismatch,
				Path:      []string{"motion", "linear_velocity", "x"},
				GoType:    "float64",
				Component: "Motion",
				Detail:    "cannot convert",
			},
			contains: []string{"[decode]", "type_mismatch", "motion.linear_velocity.x", "float64", "Motion", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindInvalidByteCount,
			},
			contains: []string{"[decode]", "invalid_byte_count"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDispatch,
				Kind:   KindInvalidData,
				Detail: "truncated header",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[dispatch]", "invalid_data", "truncated header", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindInvalidDiscriminant,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindInvalidDiscriminant}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseEncode, Kind: KindInvalidDiscriminant}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseDecode, Kind: KindMissingDiscriminant}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindInvalidDiscriminant}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match phase and kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("cause")
	err := New(PhaseBroadcast, KindCountMismatch).
		Path("values").
		Component("BoxMesh").
		GoType("[]BoxMesh").
		Value(2).
		Cause(cause).
		Detail("got %d values, expected %d", 2, 3).
		Build()

	if err.Phase != PhaseBroadcast {
		t.Errorf("phase: got %q", err.Phase)
	}
	if err.Kind != KindCountMismatch {
		t.Errorf("kind: got %q", err.Kind)
	}
	if err.Component != "BoxMesh" {
		t.Errorf("component: got %q", err.Component)
	}
	if err.Value != 2 {
		t.Errorf("value: got %v", err.Value)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not preserved through chain")
	}
	if err.Detail != "got 2 values, expected 3" {
		t.Errorf("detail: got %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("invalid_byte_count", func(t *testing.T) {
		err := InvalidByteCount(PhaseDecode, []string{"length"}, 3, 8)
		if err.Kind != KindInvalidByteCount {
			t.Errorf("kind: got %q", err.Kind)
		}
		for _, s := range []string{"3", "8"} {
			if !strings.Contains(err.Error(), s) {
				t.Errorf("message %q should name count %s", err.Error(), s)
			}
		}
	})

	t.Run("invalid_discriminant", func(t *testing.T) {
		err := InvalidDiscriminant(nil, "FrontFaceSide", 6, 2)
		if err.Kind != KindInvalidDiscriminant {
			t.Errorf("kind: got %q", err.Kind)
		}
		if err.Value != uint8(6) {
			t.Errorf("value: got %v", err.Value)
		}
	})

	t.Run("count_mismatch_names_both_counts", func(t *testing.T) {
		err := CountMismatch(PhaseBroadcast, "Motion", 2, 3)
		msg := err.Error()
		if !strings.Contains(msg, "Motion") || !strings.Contains(msg, "2") || !strings.Contains(msg, "3") {
			t.Errorf("message %q should name component and both counts", msg)
		}
	})

	t.Run("unknown_type", func(t *testing.T) {
		err := UnknownType(42)
		if err.Phase != PhaseDispatch || err.Kind != KindUnknownType {
			t.Errorf("got phase %q kind %q", err.Phase, err.Kind)
		}
	})

	t.Run("duplicate_component", func(t *testing.T) {
		err := DuplicateComponent("SphereMesh", 99)
		if err.Phase != PhaseAppend || err.Kind != KindDuplicateComponent {
			t.Errorf("got phase %q kind %q", err.Phase, err.Kind)
		}
	})
}
