package ingest

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestLoopLinesDeliversBatches(t *testing.T) {
	input := "one\ntwo\nthree\n"
	out := make(chan Batch[string], 8)
	Loop[string](context.Background(), strings.NewReader(input), Lines, out, nil)

	var got []string
	for b := range out {
		if b.Err != nil {
			t.Fatalf("unexpected error: %v", b.Err)
		}
		got = append(got, b.Items...)
	}
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d]=%q want %q", i, got[i], want[i])
		}
	}
}

func TestLoopDiscardsPartialTrailingRecord(t *testing.T) {
	r := &blockingThenEOFReader{chunks: [][]byte{[]byte("full line\npartial-no-newline")}}
	out := make(chan Batch[string], 8)
	var discarded string
	Loop[string](context.Background(), r, Lines, out, func(rest []byte) { discarded = string(rest) })

	var got []string
	for b := range out {
		got = append(got, b.Items...)
	}
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0] != "full line" {
		t.Fatalf("got[0] = %q", got[0])
	}
	// The unterminated trailing line is a partial record: Lines leaves
	// it as rest on the final split and Loop hands it to onDiscard.
	if discarded != "partial-no-newline" {
		t.Fatalf("discarded = %q, want %q", discarded, "partial-no-newline")
	}
}

func TestLoopRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := make(chan Batch[string], 1)
	done := make(chan struct{})
	go func() {
		Loop[string](ctx, strings.NewReader("a\nb\nc\n"), Lines, out, nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Loop did not return after cancellation")
	}
}

func TestCommitsSplitter(t *testing.T) {
	stream := "commit aaa\nAuthor: x\n\nmsg one\n\ncommit bbb\nAuthor: y\n\nmsg two\n"
	items, rest, err := Commits([]byte(stream), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d records, want 2: %v", len(items), items)
	}
	if !strings.HasPrefix(items[0], "commit aaa") || !strings.HasPrefix(items[1], "commit bbb") {
		t.Fatalf("unexpected records: %v", items)
	}
	if len(rest) != 0 {
		t.Fatalf("expected no leftover, got %q", rest)
	}
}

type blockingThenEOFReader struct {
	chunks [][]byte
	i      int
}

func (r *blockingThenEOFReader) Read(p []byte) (int, error) {
	if r.i >= len(r.chunks) {
		return 0, io.EOF
	}
	c := r.chunks[r.i]
	r.i++
	n := copy(p, c)
	return n, io.EOF
}
