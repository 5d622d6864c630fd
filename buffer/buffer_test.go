package buffer

import "testing"

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		if got, ok := r.(string); !ok || got != want {
			t.Fatalf("panic=%v, want %q", r, want)
		}
	}()
	fn()
}

func TestBuffer_AppendGrowsText(t *testing.T) {
	b := New("hello")
	b.Append(", world.")
	if got, want := b.String(), "hello, world."; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Len(); got != len("hello, world.") {
		t.Fatalf("len=%d, want %d", got, len("hello, world."))
	}
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	b := New("string")
	c := b.Clone()
	c.Append("!")

	if got, want := b.String(), "string"; got != want {
		t.Fatalf("source=%q, want %q", got, want)
	}
	if got, want := c.String(), "string!"; got != want {
		t.Fatalf("clone=%q, want %q", got, want)
	}
}

func TestBuffer_TakeInvalidatesSource(t *testing.T) {
	b := New("hello")
	next := b.Take()

	if got, want := next.String(), "hello"; got != want {
		t.Fatalf("new owner=%q, want %q", got, want)
	}

	mustPanic(t, "buffer: use of moved buffer", func() { _ = b.Len() })
	mustPanic(t, "buffer: use of moved buffer", func() { _ = b.View() })
	mustPanic(t, "buffer: use of moved buffer", func() { b.Append("x") })
}

func TestBuffer_TakeStalesViews(t *testing.T) {
	b := New("hello")
	v := b.View()
	_ = b.Take()

	mustPanic(t, "buffer: view used after buffer was moved", func() { _ = v.String() })
}

func TestBuffer_MutationStalesViews(t *testing.T) {
	b := New("hello world")
	v := b.View()
	if got, want := v.String(), "hello world"; got != want {
		t.Fatalf("view=%q, want %q", got, want)
	}

	b.Append("!")
	mustPanic(t, "buffer: view used after buffer mutation", func() { _ = v.Len() })
}

func TestBuffer_ClearStalesFirstWordResult(t *testing.T) {
	b := New("hello world")
	word := FirstWord(b.View())
	if got, want := word.String(), "hello"; got != want {
		t.Fatalf("word=%q, want %q", got, want)
	}

	b.Clear()
	mustPanic(t, "buffer: view used after buffer mutation", func() { _ = word.String() })
}

func TestBuffer_NoopMutationKeepsViewsValid(t *testing.T) {
	b := New("hello")
	v := b.View()

	b.Append("")
	if got, want := v.String(), "hello"; got != want {
		t.Fatalf("view after empty append=%q, want %q", got, want)
	}

	empty := New("")
	ev := empty.View()
	empty.Clear()
	if !ev.IsEmpty() {
		t.Fatalf("view after clearing empty buffer should stay valid and empty")
	}
}

func TestBuffer_ViewTracksCurrentState(t *testing.T) {
	b := New("one")
	b.Append(" two")

	v := b.View()
	if got, want := v.String(), "one two"; got != want {
		t.Fatalf("view=%q, want %q", got, want)
	}
	if got, want := v.Start(), 0; got != want {
		t.Fatalf("start=%d, want %d", got, want)
	}
	if got, want := v.End(), b.Len(); got != want {
		t.Fatalf("end=%d, want %d", got, want)
	}
}
