package invariant

import (
	"strings"
	"testing"
)

func recoverMessage(t *testing.T, f func()) string {
	t.Helper()
	var msg string
	func() {
		defer func() {
			if r := recover(); r != nil {
				msg = r.(string)
			}
		}()
		f()
	}()
	return msg
}

func TestPreconditionHoldsSilently(t *testing.T) {
	if msg := recoverMessage(t, func() { Precondition(true, "unused") }); msg != "" {
		t.Fatalf("Precondition(true) panicked: %s", msg)
	}
}

func TestPreconditionViolation(t *testing.T) {
	msg := recoverMessage(t, func() { Precondition(false, "pending %q has no grammar", "quit") })
	if !strings.HasPrefix(msg, "PRECONDITION VIOLATION: ") {
		t.Fatalf("unexpected panic message: %q", msg)
	}
	if !strings.Contains(msg, `pending "quit" has no grammar`) {
		t.Errorf("panic message missing formatted detail: %q", msg)
	}
	if !strings.Contains(msg, "at ") {
		t.Errorf("panic message missing call site: %q", msg)
	}
}

func TestInvariantViolation(t *testing.T) {
	msg := recoverMessage(t, func() { Invariant(false, "cursor must advance") })
	if !strings.HasPrefix(msg, "INVARIANT VIOLATION: ") {
		t.Fatalf("unexpected panic message: %q", msg)
	}
}

func TestNotNil(t *testing.T) {
	if msg := recoverMessage(t, func() { NotNil("value", "arg") }); msg != "" {
		t.Fatalf("NotNil with non-nil value panicked: %s", msg)
	}
	msg := recoverMessage(t, func() { NotNil(nil, "handler") })
	if !strings.Contains(msg, "handler must not be nil") {
		t.Fatalf("unexpected panic message: %q", msg)
	}
}
