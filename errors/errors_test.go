package errors

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"
	"syscall"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func TestStackTrace(t *testing.T) {
	const testMsg = "test error"
	er := New(testMsg)

	if er.GetMessage() != testMsg {
		t.Errorf("error message %s != expected %s", er.GetMessage(), testMsg)
	}

	if strings.Index(er.GetStack(), "combo/errors/errors.go") != -1 {
		t.Error("stack trace generation code should not be in the error stack trace")
	}

	if strings.Index(er.GetStack(), "TestStackTrace") == -1 {
		t.Error("stack trace must have test code in it")
	}

	for i, r := range er.GetStack() {
		if !(unicode.IsSpace(r) || unicode.IsPrint(r)) {
			t.Errorf("stack trace has an unexpected rune at index %v (%q)", i, r)
			break
		}
	}
}

func TestWrappedError(t *testing.T) {
	const (
		innerMsg  = "I am inner error"
		middleMsg = "I am the middle error"
		outerMsg  = "I am the mighty outer error"
	)
	inner := fmt.Errorf(innerMsg)
	middle := Wrap(inner, middleMsg)
	outer := Wrap(middle, outerMsg)
	errorStr := outer.Error()

	if strings.Index(errorStr, innerMsg+"\n") == -1 {
		t.Errorf("couldn't find inner error message in:\n%s", errorStr)
	}

	if strings.Index(errorStr, middleMsg+"\n") == -1 {
		t.Errorf("couldn't find middle error message in:\n%s", errorStr)
	}

	if strings.Index(errorStr, outerMsg+"\n") == -1 {
		t.Errorf("couldn't find outer error message in:\n%s", errorStr)
	}
}

func TestWrapf(t *testing.T) {
	inner := stderrors.New("index out of range")
	er := Wrapf(inner, "picking combination %d", 7)

	if er.GetMessage() != "picking combination 7" {
		t.Errorf("unexpected message: %s", er.GetMessage())
	}
	if er.GetInner() != inner {
		t.Errorf("unexpected inner error: %v", er.GetInner())
	}
}

func TestRootErrors(t *testing.T) {
	const (
		innerMsg  = "inner error"
		middleMsg = "middle error"
		outerMsg  = "outer error"
	)
	inner := fmt.Errorf(innerMsg)
	middle := Wrap(inner, middleMsg)
	outer := Wrap(middle, outerMsg)

	root := RootError(outer)
	rootTraced := RootTracedError(outer)
	if root != inner {
		t.Errorf("Got wrong RootError. %s", root)
	}
	if rootTraced != middle {
		t.Errorf("Got wrong RootTracedError %s", rootTraced)
	}
}

func TestStackAddrs(t *testing.T) {
	pat := regexp.MustCompile("^0x[a-h0-9]+( 0x[a-h0-9]+)*$")
	er := New("big trouble")
	if !pat.MatchString(er.StackAddrs()) {
		t.Errorf("StackAddrs didn't match `%s`: %q", pat, er.StackAddrs())
	}
}

// Small enough for the compiler to inline into its caller.
func makeTracedStack() TracedError {
	return Newf("level %d trouble", 2)
}

func TestStackFrames(t *testing.T) {
	er := makeTracedStack()

	frames := er.StackFrames()
	if len(frames) == 0 {
		t.Fatal("no stack frames captured")
	}
	if !strings.Contains(frames[0].FuncName, "makeTracedStack") {
		t.Errorf("first frame should be the construction site, got %s",
			frames[0].FuncName)
	}
	if !strings.Contains(frames[0].File, "errors_test.go") {
		t.Errorf("first frame should resolve to the test file, got %s",
			frames[0].File)
	}
	if frames[0].LineNumber == 0 {
		t.Error("first frame is missing its line number")
	}

	if strings.Index(er.GetStack(), "TestStackFrames") == -1 {
		t.Error("stack trace must have test code in it")
	}
}

func TestStdlibInterop(t *testing.T) {
	inner := stderrors.New("no more combinations")
	outer := Wrap(Wrap(inner, "walk failed"), "request failed")

	require.True(t, stderrors.Is(outer, inner))

	var traced TracedError
	require.True(t, stderrors.As(outer, &traced))
	require.Equal(t, "request failed", traced.GetMessage())
}

// ---------------------------------------
// minimal example + test for custom error
//
type boundsError struct {
	TracedError
	limit int
}

// "constructor" for creating error (needs to call New to capture the stack
// trace at construction time)
func newBoundsError(msg string, limit int) boundsError {
	return boundsError{TracedError: New(msg), limit: limit}
}

// ---------------------------------------

func TestCustomError(t *testing.T) {
	boundsMsg := "index 17 beyond last valid position (11)"
	outerMsg := "outer msg"

	bndError := newBoundsError(boundsMsg, 11)
	outerError := Wrap(bndError, outerMsg)

	errorStr := outerError.Error()
	if strings.Index(errorStr, boundsMsg) == -1 {
		t.Errorf("couldn't find bounds error message in:\n%s", errorStr)
	}

	if strings.Index(errorStr, outerMsg) == -1 {
		t.Errorf("couldn't find outer error message in:\n%s", errorStr)
	}

	if strings.Index(errorStr, "errors.TestCustomError") == -1 {
		t.Errorf("couldn't find this function in stack trace:\n%s", errorStr)
	}
}

type customErr struct {
}

func (ce *customErr) Error() string { return "testing error" }

type customNestedErr struct {
	Err error
}

func (cne *customNestedErr) Error() string { return "nested testing error" }

func (cne *customNestedErr) Unwrap() error { return cne.Err }

func TestRootError(t *testing.T) {
	err := RootError(nil)
	if err != nil {
		t.Fatalf("expected nil error")
	}
	var ce *customErr
	err = RootError(ce)
	if err != ce {
		t.Fatalf("expected err on invalid nil-ptr custom error %T %v", err, err)
	}
	ce = &customErr{}
	err = RootError(ce)
	if err != ce {
		t.Fatalf("expected err on valid custom error")
	}

	cne := &customNestedErr{}
	err = RootError(cne)
	if err != cne {
		t.Fatalf("expected err on empty custom error: %T %v", err, err)
	}

	cne = &customNestedErr{ce}
	err = RootError(cne)
	if err != ce {
		t.Fatalf("expected ce on valid nested error: %T %v", err, err)
	}

	err = RootError(syscall.ECONNREFUSED)
	if err != syscall.ECONNREFUSED {
		t.Fatalf("expected ECONNREFUSED on valid nested error: %T %v", err, err)
	}
}

func TestIsError(t *testing.T) {
	sentinel := stderrors.New("connection reset")
	wrapped := Wrap(Wrap(sentinel, "read failed"), "request failed")

	if !IsError(sentinel, sentinel) {
		t.Error("an error should match itself")
	}
	if !IsError(wrapped, sentinel) {
		t.Error("a wrapped error should match its root")
	}
	if IsError(wrapped, stderrors.New("deadline exceeded")) {
		t.Error("unrelated errors should not match")
	}
}

// Benchmarks creation of new errors.
// Current expected range is ~0.1-0.2ms to create errors from 100 go routines
// simultaneously. This is fairly close to just spinning up go routines
// and putting stuff on channels and doing some very simple work, thus
// error creation should be cheap enough for all most all use cases.
func BenchmarkNew(b *testing.B) {
	a := func() error {
		b := func() error {
			c := func() error {
				return New("Hello world, grab me a stack trace!")
			}
			return c()
		}
		return b()
	}
	nRoutines := 100
	errChan := make(chan error, nRoutines)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for k := 0; k < nRoutines; k++ {
			go func() {
				err := a()
				errChan <- err
			}()
		}
		for k := 0; k < nRoutines; k++ {
			<-errChan
		}
	}
}
