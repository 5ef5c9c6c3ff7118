// Package batch converts a stream of lines concurrently, keeping input order.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/wordfigure/numtext"
)

const maxLineBytes = 1 << 20 // 1 MB per input line

// ErrLinesFailed is returned by callers when at least one line could not be
// converted. Run itself records per-line failures in the results.
var ErrLinesFailed = errors.New("batch: one or more lines failed")

// Result is the outcome of converting one input line.
type Result struct {
	Line   int    `json:"line"`
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether the line could not be converted.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Options configures Run.
type Options struct {
	Direction numtext.Direction
	Workers   int
	Logger    *zap.Logger
}

type job struct {
	line  int
	input string
}

// Run reads r line by line and converts every non-blank line in
// opts.Direction using up to opts.Workers goroutines. Results are returned in
// input order; line numbers are 1-based and count blank lines.
//
// Conversion failures are recorded per line. The returned error is non-nil
// only when reading fails or ctx is cancelled.
func Run(ctx context.Context, r io.Reader, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := max(opts.Workers, 1)

	jobs, err := readJobs(r)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = convertLine(j, opts.Direction)
			if results[i].Failed() {
				logger.Debug("line failed",
					zap.Int("line", j.line),
					zap.String("input", j.input),
					zap.String("error", results[i].Error))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	logger.Info("batch complete",
		zap.Stringer("direction", opts.Direction),
		zap.Int("lines", len(results)),
		zap.Int("failed", CountFailed(results)),
		zap.Duration("elapsed", time.Since(start)))

	return results, nil
}

// CountFailed returns the number of failed results.
func CountFailed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}

func readJobs(r io.Reader) ([]job, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var jobs []job
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		jobs = append(jobs, job{line: line, input: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("batch: read input: %w", err)
	}
	return jobs, nil
}

func convertLine(j job, d numtext.Direction) Result {
	res := Result{Line: j.line, Input: j.input}
	out, err := numtext.NewWordFigure(j.input).Convert(d)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Output = out
	return res
}
