package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type captureHandler struct {
	errs       []*EaselError
	panics     []*PanicError
	invariants []*InvariantError
}

func (h *captureHandler) HandleError(err *EaselError)         { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)         { h.panics = append(h.panics, err) }
func (h *captureHandler) HandleInvariant(err *InvariantError) { h.invariants = append(h.invariants, err) }

func TestErrorFormatting(t *testing.T) {
	err := &EaselError{
		Op:   "control.Resize",
		Kind: KindInvalidArgument,
		Err:  errors.New("negative width"),
	}
	got := err.Error()
	if !strings.Contains(got, "control.Resize") || !strings.Contains(got, "invalid_argument") {
		t.Fatalf("unexpected format: %q", got)
	}
}

func TestKindStrings(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown:         "unknown",
		KindInvalidArgument: "invalid_argument",
		KindInvariant:       "invariant",
		KindRender:          "render",
		KindConfig:          "config",
		KindPanic:           "panic",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestIsInvalidArgument(t *testing.T) {
	base := InvalidArgument("control.Resize", "negative width %v", -1.0)
	if !IsInvalidArgument(base) {
		t.Fatal("direct EaselError not recognized")
	}
	wrapped := fmt.Errorf("outer: %w", base)
	if !IsInvalidArgument(wrapped) {
		t.Fatal("wrapped EaselError not recognized")
	}
	if IsInvalidArgument(errors.New("plain")) {
		t.Fatal("plain error must not match")
	}
	if IsInvalidArgument(nil) {
		t.Fatal("nil must not match")
	}
}

func TestReportSetsTimestamp(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Report(&EaselError{Op: "test", Kind: KindRender, Err: errors.New("boom")})
	if len(capture.errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(capture.errs))
	}
	if capture.errs[0].Timestamp.IsZero() {
		t.Fatal("Report must stamp the error time")
	}
}

func TestReportInvariantFillsStack(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	ReportInvariant(&InvariantError{Op: "control.Invalidate", Detail: "mutation during render"})
	if len(capture.invariants) != 1 {
		t.Fatalf("got %d invariants, want 1", len(capture.invariants))
	}
	got := capture.invariants[0]
	if got.StackTrace == "" {
		t.Fatal("ReportInvariant must capture a stack")
	}
	if !strings.Contains(got.Error(), "mutation during render") {
		t.Fatalf("unexpected message: %q", got.Error())
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("kaboom")
	}()

	if len(capture.panics) != 1 {
		t.Fatalf("got %d panics, want 1", len(capture.panics))
	}
	if capture.panics[0].Value != "kaboom" {
		t.Fatalf("panic value = %v, want kaboom", capture.panics[0].Value)
	}
}
