package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/az-ai-labs/wordfigure/numtext"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun_Words(t *testing.T) {
	input := "5\n\n1005\n  200450  \n-3\nabc\n"

	got, err := Run(context.Background(), strings.NewReader(input), Options{Direction: numtext.Words, Workers: 3})
	assert.NilError(t, err)

	want := []Result{
		{Line: 1, Input: "5", Output: "five"},
		{Line: 3, Input: "1005", Output: "one thousand and five"},
		{Line: 4, Input: "200450", Output: "two hundred thousand, four hundred and fifty"},
		{Line: 5, Input: "-3", Error: `numtext: invalid input: negative value "-3"`},
		{Line: 6, Input: "abc", Error: `numtext: invalid input: "abc" is not a number`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, CountFailed(got), 2)
}

func TestRun_Figures(t *testing.T) {
	input := "forty-seven\none thousand and five\nfifth\n"

	got, err := Run(context.Background(), strings.NewReader(input), Options{Direction: numtext.Figures, Workers: 2})
	assert.NilError(t, err)
	assert.Assert(t, is.Len(got, 3))
	assert.Equal(t, got[0].Output, "47")
	assert.Equal(t, got[1].Output, "1005")
	assert.Assert(t, got[2].Failed())
	assert.Assert(t, is.Contains(got[2].Error, "unknown word"))
}

func TestRun_PreservesOrder(t *testing.T) {
	const lines = 2000

	var sb strings.Builder
	for i := range lines {
		fmt.Fprintf(&sb, "%d\n", i*7919)
	}

	got, err := Run(context.Background(), strings.NewReader(sb.String()), Options{Direction: numtext.Words, Workers: 16})
	assert.NilError(t, err)
	assert.Assert(t, is.Len(got, lines))

	for i, r := range got {
		want, err := numtext.Convert(int64(i * 7919))
		assert.NilError(t, err)
		if r.Line != i+1 || r.Output != want {
			t.Fatalf("result %d = %+v, want line %d output %q", i, r, i+1, want)
		}
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, strings.NewReader("1\n2\n3\n"), Options{Workers: 2})
	assert.Assert(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestRun_ReadError(t *testing.T) {
	boom := errors.New("boom")

	_, err := Run(context.Background(), iotest.ErrReader(boom), Options{Workers: 1})
	assert.ErrorIs(t, err, boom)
}

func TestRun_LogsSummary(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	_, err := Run(context.Background(), strings.NewReader("1\nnope\n"), Options{
		Direction: numtext.Words,
		Workers:   1,
		Logger:    zap.New(core),
	})
	assert.NilError(t, err)

	assert.Equal(t, logs.FilterMessage("line failed").Len(), 1)
	summary := logs.FilterMessage("batch complete").All()
	assert.Assert(t, is.Len(summary, 1))
	assert.Equal(t, summary[0].ContextMap()["failed"], int64(1))
	assert.Equal(t, summary[0].ContextMap()["direction"], "words")
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteText(&buf, []Result{
		{Line: 1, Input: "5", Output: "five"},
		{Line: 2, Input: "x", Error: "numtext: invalid input"},
	})
	assert.NilError(t, err)
	assert.Equal(t, buf.String(), "5\tfive\nx\terror: numtext: invalid input\n")
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteJSON(&buf, []Result{
		{Line: 1, Input: "5", Output: "five"},
		{Line: 2, Input: "x", Error: "bad"},
	})
	assert.NilError(t, err)
	assert.Equal(t, buf.String(),
		`{"line":1,"input":"5","output":"five"}`+"\n"+
			`{"line":2,"input":"x","error":"bad"}`+"\n")
}

func TestWriteText_WriterError(t *testing.T) {
	t.Parallel()

	err := WriteText(errWriter{}, []Result{{Line: 1, Input: "5", Output: "five"}})
	assert.ErrorContains(t, err, "batch: write text")
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }
