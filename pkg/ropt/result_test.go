package ropt

import (
	"errors"
	"strings"
	"testing"
)

func TestResultVariantExhaustiveness(t *testing.T) {
	t.Parallel()
	ok := Ok[error](1)
	fail := Err[int](errors.New("boom"))

	if ok.IsOk() == ok.IsErr() {
		t.Fatalf("Ok must satisfy exactly one predicate: ok=%v err=%v", ok.IsOk(), ok.IsErr())
	}
	if fail.IsOk() == fail.IsErr() {
		t.Fatalf("Err must satisfy exactly one predicate: ok=%v err=%v", fail.IsOk(), fail.IsErr())
	}
}

func TestResultPredicateShortCircuit(t *testing.T) {
	t.Parallel()
	calls := 0

	if Err[int](errors.New("boom")).IsOkAnd(func(int) bool { calls++; return true }) {
		t.Fatal("IsOkAnd on Err must be false")
	}
	if Ok[error](1).IsErrAnd(func(error) bool { calls++; return true }) {
		t.Fatal("IsErrAnd on Ok must be false")
	}
	if calls != 0 {
		t.Fatalf("predicates must not run on the wrong variant, ran %d times", calls)
	}

	if !Ok[error](2).IsOkAnd(func(v int) bool { return v == 2 }) {
		t.Fatal("IsOkAnd on Ok(2) must hold")
	}
	if !Err[int](errors.New("boom")).IsErrAnd(func(err error) bool { return err.Error() == "boom" }) {
		t.Fatal("IsErrAnd on Err(boom) must hold")
	}
}

func TestResultProjections(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	if got := Ok[error](5).Ok(); got.Unwrap() != 5 {
		t.Fatalf("Ok projection on Ok: got %v", got)
	}
	if got := Ok[error](5).Err(); !got.IsNone() {
		t.Fatal("Err projection on Ok must be None")
	}
	if got := Err[int](boom).Ok(); !got.IsNone() {
		t.Fatal("Ok projection on Err must be None")
	}
	if got := Err[int](boom).Err(); got.Unwrap() != boom {
		t.Fatalf("Err projection on Err: got %v", got)
	}

	// Projection never nil-filters: an Ok holding a nil pointer still
	// projects to Some.
	var nilPtr *int
	if got := Ok[error](nilPtr).Ok(); !got.IsSome() {
		t.Fatal("Ok projection must not filter nil payloads")
	}
}

func TestResultUnwrapDirections(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	if got := Ok[error](3).Unwrap(); got != 3 {
		t.Fatalf("Unwrap on Ok: got %d", got)
	}
	if got := Err[int](boom).UnwrapErr(); got != boom {
		t.Fatalf("UnwrapErr on Err: got %v", got)
	}

	t.Run("unwrap on err panics with repr", func(t *testing.T) {
		t.Parallel()
		defer func() {
			re, ok := recover().(*ResultError)
			if !ok {
				t.Fatal("expected *ResultError")
			}
			if !strings.Contains(re.Message, "boom") {
				t.Fatalf("message must embed the error repr, got %q", re.Message)
			}
		}()
		Err[int](boom).Unwrap()
	})

	t.Run("unwrapErr on ok panics with repr", func(t *testing.T) {
		t.Parallel()
		defer func() {
			re, ok := recover().(*ResultError)
			if !ok {
				t.Fatal("expected *ResultError")
			}
			if !strings.Contains(re.Message, "3") {
				t.Fatalf("message must embed the value repr, got %q", re.Message)
			}
		}()
		Ok[error](3).UnwrapErr()
	})
}

func TestResultExpectMessages(t *testing.T) {
	t.Parallel()

	t.Run("expect embeds error", func(t *testing.T) {
		t.Parallel()
		defer func() {
			re, ok := recover().(*ResultError)
			if !ok {
				t.Fatal("expected *ResultError")
			}
			if re.Message != "want value: boom" {
				t.Fatalf("got %q", re.Message)
			}
		}()
		Err[int](errors.New("boom")).Expect("want value")
	})

	t.Run("expectErr embeds value", func(t *testing.T) {
		t.Parallel()
		defer func() {
			re, ok := recover().(*ResultError)
			if !ok {
				t.Fatal("expected *ResultError")
			}
			if re.Message != "want error: 7" {
				t.Fatalf("got %q", re.Message)
			}
		}()
		Ok[error](7).ExpectErr("want error")
	})
}

func TestResultFallbacks(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	if got := Err[int](boom).UnwrapOr(9); got != 9 {
		t.Fatalf("UnwrapOr on Err: got %d", got)
	}

	called := false
	got := Ok[error](2).UnwrapOrElse(func(error) int { called = true; return 9 })
	if got != 2 || called {
		t.Fatal("UnwrapOrElse must not run the recovery on Ok")
	}

	// The recovery receives the error, enabling error-aware fallback.
	got = Err[int](boom).UnwrapOrElse(func(err error) int {
		if err != boom {
			t.Fatalf("recovery received %v", err)
		}
		return 9
	})
	if got != 9 {
		t.Fatalf("UnwrapOrElse on Err: got %d", got)
	}
}

func TestResultIdentityNoOps(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	calls := 0

	ok := Ok[error](1)
	mapped := ok.MapErr(func(err error) error { calls++; return err })
	if mapped.Id() != ok.Id() {
		t.Fatal("MapErr on Ok must return the same value, identity stamp included")
	}

	fail := Err[int](boom)
	mapped = fail.Map(func(v int) int { calls++; return v })
	if mapped.Id() != fail.Id() {
		t.Fatal("Map on Err must return the same value, identity stamp included")
	}
	if calls != 0 {
		t.Fatalf("callbacks must not run on the wrong variant, ran %d times", calls)
	}

	// Type-changing forms preserve the stamp of the passed-through side.
	mappedU := MapResult(fail, func(v int) string { calls++; return "x" })
	if mappedU.Id() != fail.Id() || calls != 0 {
		t.Fatal("MapResult on Err must preserve the identity stamp")
	}
	mappedF := MapResultErr(ok, func(err error) string { calls++; return "x" })
	if mappedF.Id() != ok.Id() || calls != 0 {
		t.Fatal("MapResultErr on Ok must preserve the identity stamp")
	}
	if mappedF.CreatedAt() != ok.CreatedAt() {
		t.Fatal("pass-through must preserve the creation time")
	}
}

func TestResultMapAndChain(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	if got := Ok[error](21).Map(func(v int) int { return v * 2 }); got.Unwrap() != 42 {
		t.Fatalf("Map on Ok: got %v", got)
	}
	if got := Err[int](boom).MapErr(func(err error) error { return errors.New("mapped: " + err.Error()) }); got.UnwrapErr().Error() != "mapped: boom" {
		t.Fatalf("MapErr on Err: got %v", got)
	}

	if got := Ok[error](1).AndThen(func(v int) Result[int, error] { return Ok[error](v + 1) }); got.Unwrap() != 2 {
		t.Fatalf("AndThen on Ok: got %v", got)
	}
	calls := 0
	if got := Err[int](boom).AndThen(func(v int) Result[int, error] { calls++; return Ok[error](v) }); !got.IsErr() || calls != 0 {
		t.Fatal("AndThen on Err must not run the callback")
	}

	if got := Ok[error](1).And(Ok[error](5)); got.Unwrap() != 5 {
		t.Fatalf("And on Ok: got %v", got)
	}
	if got := Ok[error](1).Or(Ok[error](5)); got.Unwrap() != 1 {
		t.Fatalf("Or on Ok: got %v", got)
	}
	if got := Err[int](boom).Or(Ok[error](5)); got.Unwrap() != 5 {
		t.Fatalf("Or on Err: got %v", got)
	}
	if got := Ok[error](1).OrElse(func(error) Result[int, error] { calls++; return Ok[error](9) }); got.Unwrap() != 1 || calls != 0 {
		t.Fatal("OrElse on Ok must not run the recovery")
	}

	if got := FlatMapResult(Ok[error](2), func(v int) Result[string, error] { return Ok[error]("x") }); got.Unwrap() != "x" {
		t.Fatalf("FlatMapResult: got %v", got)
	}
	recovered := OrElseResult(Err[int](boom), func(err error) Result[int, string] {
		return Err[int](err.Error())
	})
	if recovered.UnwrapErr() != "boom" {
		t.Fatalf("OrElseResult: got %v", recovered)
	}
}

func TestResultMapOrForms(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	if got := Ok[error](3).MapOr(0, func(v int) int { return v + 1 }); got != 4 {
		t.Fatalf("MapOr on Ok: got %d", got)
	}
	if got := Err[int](boom).MapOr(7, func(v int) int { return v + 1 }); got != 7 {
		t.Fatalf("MapOr on Err: got %d", got)
	}
	got := Err[int](boom).MapOrElse(
		func(err error) int { return len(err.Error()) },
		func(v int) int { return v },
	)
	if got != 4 {
		t.Fatalf("MapOrElse on Err must receive the error: got %d", got)
	}
	if got := MapResultOr(Ok[error](3), "d", func(v int) string { return "v" }); got != "v" {
		t.Fatalf("MapResultOr on Ok: got %q", got)
	}
	if got := MapResultOrElse(Err[int](boom), func(err error) string { return err.Error() }, func(v int) string { return "v" }); got != "boom" {
		t.Fatalf("MapResultOrElse on Err: got %q", got)
	}
}

func TestResultTranspose(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	var nilPtr *int
	if got := Ok[error](nilPtr).Transpose(); !got.IsNone() {
		t.Fatal("Transpose of Ok(nil pointer) must be None")
	}

	v := 1
	ok := Ok[error](&v)
	got := ok.Transpose()
	if !got.IsSome() || got.Unwrap().Id() != ok.Id() {
		t.Fatal("Transpose of Ok(non-nil) must be Some of the same value")
	}

	// The nil boundary is reflection-nil only: zero values stay Some.
	if got := Ok[error](0).Transpose(); !got.IsSome() {
		t.Fatal("Transpose of Ok(0) must be Some")
	}
	if got := Ok[error]("").Transpose(); !got.IsSome() {
		t.Fatal(`Transpose of Ok("") must be Some`)
	}

	fail := Err[int](boom)
	got2 := fail.Transpose()
	if !got2.IsSome() || got2.Unwrap().Id() != fail.Id() {
		t.Fatal("Transpose of Err must be Some of the same value")
	}
}

func TestResultMatch(t *testing.T) {
	t.Parallel()
	okRuns, errRuns := 0, 0

	Ok[error](5).Match(
		func(v int) { okRuns++ },
		func(err error) { errRuns++ },
	)
	Err[int](errors.New("boom")).Match(
		func(v int) { okRuns++ },
		func(err error) { errRuns++ },
	)
	if okRuns != 1 || errRuns != 1 {
		t.Fatalf("Match must run exactly one handler per value: ok=%d err=%d", okRuns, errRuns)
	}

	if got := MatchResult(Ok[error](5), func(v int) string { return "ok" }, func(error) string { return "err" }); got != "ok" {
		t.Fatalf("MatchResult on Ok: got %q", got)
	}
}

func TestResultString(t *testing.T) {
	t.Parallel()
	if got := Ok[error](42).String(); got != "Ok(42)" {
		t.Fatalf("got %q", got)
	}
	if got := Err[int]("x").String(); got != "Err(x)" {
		t.Fatalf("got %q", got)
	}
	if got := Err[int](errors.New("boom")).String(); got != "Err(boom)" {
		t.Fatalf("got %q", got)
	}
	if got := Ok[error](func() {}).String(); got != "Ok("+NonSerializable+")" {
		t.Fatalf("non-serializable payload: got %q", got)
	}
}

func TestResultCollect(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	got := Collect([]Result[int, error]{Ok[error](1), Ok[error](2)})
	if !got.IsOk() || len(got.Unwrap()) != 2 {
		t.Fatalf("Collect of all Ok: got %v", got)
	}

	fail := Err[int](boom)
	got = Collect([]Result[int, error]{Ok[error](1), fail, Ok[error](2)})
	if !got.IsErr() || got.Id() != fail.Id() {
		t.Fatal("Collect must stop at the first failure and preserve it")
	}

	all := CollectAll([]Result[int, error]{
		Ok[error](1),
		Err[int](errors.New("a")),
		Err[int](errors.New("b")),
	})
	if !all.IsErr() {
		t.Fatal("CollectAll with failures must be Err")
	}
	if parts := GetErrors(all.UnwrapErr()); len(parts) != 2 {
		t.Fatalf("CollectAll must join every failure, got %d", len(parts))
	}
}

func TestResultCapabilityContracts(t *testing.T) {
	t.Parallel()
	r := Ok[error](4)
	if got := ResultFrom[int, error](r); got.Unwrap() != 4 {
		t.Fatalf("ResultFrom: got %v", got)
	}
	if got := OptionFrom[int](r); got.Unwrap() != 4 {
		t.Fatalf("OptionFrom over a Result projects the success side: got %v", got)
	}
}
