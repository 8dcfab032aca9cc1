package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestDialErrorString(t *testing.T) {
	err := New("dial.ScreenProfile.Validate", KindConfig, stderrors.New("tile count 0"))
	got := err.Error()
	want := "dial.ScreenProfile.Validate [config]: tile count 0"
	if got != want {
		t.Errorf("DialError.Error() = %q, want %q", got, want)
	}
}

func TestDialErrorUnwrap(t *testing.T) {
	sentinel := stderrors.New("boom")
	err := New("config.Load", KindConfig, sentinel)
	if !stderrors.Is(err, sentinel) {
		t.Error("expected errors.Is to find wrapped sentinel")
	}
	var de *DialError
	if !stderrors.As(error(err), &de) || de.Kind != KindConfig {
		t.Errorf("errors.As failed, got %+v", de)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf("locale.Load", KindLocale, "no messages for %q", "xx")
	if !strings.Contains(err.Error(), `no messages for "xx"`) {
		t.Errorf("Errorf message = %q", err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindLocale, "locale"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "display.Tick"
	if got, want := err.Error(), "panic in display.Tick: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *DialError
	handler := &testHandler{onError: func(err *DialError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(New("test.op", KindRender, stderrors.New("bad frame")))

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	handler := &testHandler{onError: func(*DialError) { called = true }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("handler should not be invoked for nil errors")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback received %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{
		Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
		Verbose: true,
	}

	h.HandleError(New("config.Resolve", KindConfig, stderrors.New("unknown profile")))
	h.HandlePanic(&PanicError{Op: "display.Trigger", Value: "boom", StackTrace: "frame"})
	h.HandleError(nil)

	out := buf.String()
	for _, want := range []string{"op=config.Resolve", "kind=config", "unknown profile", "op=display.Trigger", "value=boom", "stack=frame"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testHandler struct {
	onError func(*DialError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *DialError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
