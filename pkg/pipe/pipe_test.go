package pipe

import (
	"testing"

	"github.com/ib-77/opt3/pkg/res"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	out := Start(res.Ok[int, string](5)).Result()
	if !out.IsOk() || out.UnwrapOr(0) != 5 {
		t.Fatalf("expected ok with 5, got: ok=%v, val=%v", out.IsOk(), out.UnwrapOr(0))
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](7).Result()
	if !out.IsOk() || out.UnwrapOr(0) != 7 {
		t.Fatalf("expected ok with 7, got: ok=%v, val=%v", out.IsOk(), out.UnwrapOr(0))
	}
}

func TestThen_OkPath(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](3).
		Then(func(v int) res.Result[int, string] { return res.Ok[int, string](v * 2) }).
		Result()

	if got := out.UnwrapOr(0); got != 6 {
		t.Fatalf("expected 6, got %v", got)
	}
}

func TestThen_ShortCircuitOnErr(t *testing.T) {
	t.Parallel()
	called := false
	out := Start(res.Err[int]("boom")).
		Then(func(v int) res.Result[int, string] {
			called = true
			return res.Ok[int, string](v + 1)
		}).
		Result()

	if called {
		t.Fatalf("onOk should not run when chain is err")
	}
	if got := out.UnwrapErrOr(""); got != "boom" {
		t.Fatalf("expected \"boom\", got %q", got)
	}
}

func TestMapAndTee(t *testing.T) {
	t.Parallel()
	seen := 0
	out := FromValue[int, string](4).
		Map(func(v int) int { return v + 1 }).
		Tee(func(v int) { seen = v }).
		Result()

	if got := out.UnwrapOr(0); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if seen != 5 {
		t.Fatalf("tee should observe the mapped value, saw %v", seen)
	}
}

func TestTee_SkippedOnErr(t *testing.T) {
	t.Parallel()
	called := false
	Start(res.Err[int]("e")).Tee(func(v int) { called = true })

	if called {
		t.Fatalf("tee should not run on err")
	}
}

func TestOr_PrefersFirstOk(t *testing.T) {
	t.Parallel()
	ok := FromValue[int, string](1)
	alt := FromValue[int, string](2)

	if got := ok.Or(alt).Result().UnwrapOr(0); got != 1 {
		t.Fatalf("expected receiver to win when ok, got %v", got)
	}

	failed := Start(res.Err[int]("first"))
	if got := failed.Or(alt).Result().UnwrapOr(0); got != 2 {
		t.Fatalf("expected alternative on err, got %v", got)
	}

	alsoFailed := Start(res.Err[int]("second"))
	if got := failed.Or(alsoFailed).Result().UnwrapErrOr(""); got != "first" {
		t.Fatalf("expected first error to win, got %q", got)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	got := Finally(FromValue[int, string](3), res.Matcher[int, string, string]{
		OnOk:  func(v int) string { return "ok" },
		OnErr: func(e string) string { return "err:" + e },
	})
	if got != "ok" {
		t.Fatalf("expected ok branch, got %q", got)
	}

	got = Finally(Start(res.Err[int]("x")), res.Matcher[int, string, string]{
		OnOk:  func(v int) string { return "ok" },
		OnErr: func(e string) string { return "err:" + e },
	})
	if got != "err:x" {
		t.Fatalf("expected err branch, got %q", got)
	}
}
