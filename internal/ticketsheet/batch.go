package ticketsheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"
)

const (
	MaxBatchSize   = 1000
	DefaultTimeout = 120 * time.Second
)

type FailureMode string

const (
	FailureAbort   FailureMode = "abort"
	FailureCollect FailureMode = "collect"
)

// Participant is one ticket holder. Only Token ends up in the barcode.
type Participant struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

type Options struct {
	// Workers caps concurrent renders. Zero means min(NumCPU, batch size).
	Workers     int
	Timeout     time.Duration
	FailureMode FailureMode
}

type Request struct {
	Template *TemplateAsset
	// Placement is the barcode rectangle in native template pixels.
	Placement    Rect
	Participants []Participant
}

// Failure records a ticket left out of the sheet in collect mode.
type Failure struct {
	Index int    `json:"index"`
	Token string `json:"token"`
	Error string `json:"error"`
}

type Result struct {
	PDF      []byte
	Pages    int
	Rendered int
	Failures []Failure
	Duration time.Duration
}

type Generator struct {
	opts Options
}

func NewGenerator(opts Options) *Generator {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.FailureMode == "" {
		opts.FailureMode = FailureAbort
	}
	return &Generator{opts: opts}
}

func (g *Generator) Options() Options {
	return g.opts
}

func (g *Generator) workerCount(n int) int {
	workers := g.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return max(1, min(workers, n))
}

// ValidateBatch checks the participant count before any rendering happens.
func ValidateBatch(participants []Participant) error {
	n := len(participants)
	if n == 0 {
		return &Error{Code: CodeEmptyBatch, Message: "at least one participant is required", Fields: map[string]int{"participants": 0}}
	}
	if n > MaxBatchSize {
		return &Error{
			Code:    CodeBatchTooLarge,
			Message: fmt.Sprintf("batch of %d participants exceeds the limit of %d", n, MaxBatchSize),
			Fields:  map[string]int{"participants": n, "max": MaxBatchSize},
		}
	}
	return nil
}

// Generate renders one ticket per participant and assembles them, in input
// order, into a single PDF. Nothing is returned for an aborted batch.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if err := ValidateBatch(req.Participants); err != nil {
		return nil, err
	}
	if req.Template == nil {
		return nil, templateDecodeError("template is required", false, nil)
	}
	if err := ValidatePlacement(req.Placement, req.Template.Size()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	renderer := NewRenderer(req.Template, req.Placement)
	n := len(req.Participants)
	tickets, errs := g.renderAll(ctx, cancel, renderer, req.Participants)

	failures := collectFailures(req.Participants, errs)

	if g.opts.FailureMode == FailureAbort && len(failures) > 0 {
		first := failures[0]
		slog.Error("TicketSheet Generate aborted", "index", first.Index, "token", first.Token, "error", errs[first.Index])
		return nil, errs[first.Index]
	}

	if err := ctx.Err(); err != nil {
		slog.Error("TicketSheet Generate timed out", "participants", n, "elapsed", time.Since(start), "error", err)
		return nil, &Error{
			Code:    CodeBatchTimeout,
			Message: fmt.Sprintf("ticket sheet generation did not finish within %s", g.opts.Timeout),
			Err:     err,
		}
	}

	if len(failures) == n {
		return nil, errs[failures[0].Index]
	}

	pdf, pages, err := ComposePDF(tickets)
	if err != nil {
		return nil, &Error{Code: CodeTicketRender, Message: "failed to assemble ticket sheet", Internal: true, Err: err}
	}

	result := &Result{
		PDF:      pdf,
		Pages:    pages,
		Rendered: n - len(failures),
		Failures: failures,
		Duration: time.Since(start),
	}

	slog.Info("TicketSheet Generate completed",
		"participants", n,
		"rendered", result.Rendered,
		"failed", len(failures),
		"pages", pages,
		"duration", result.Duration)

	return result, nil
}

// renderAll fans the participants out to a bounded pool of workers. Results are
// stored by input index so completion order never affects sheet order.
func (g *Generator) renderAll(ctx context.Context, cancel context.CancelFunc, renderer *Renderer, participants []Participant) ([][]byte, []error) {
	n := len(participants)
	tickets := make([][]byte, n)
	errs := make([]error, n)

	jobs := make(chan int, n)
	for i := range participants {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < g.workerCount(n); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				png, err := renderer.Render(participants[i].Token)
				if err != nil {
					errs[i] = err
					if g.opts.FailureMode == FailureAbort {
						cancel()
						return
					}
					continue
				}
				tickets[i] = png
			}
		}()
	}
	wg.Wait()

	return tickets, errs
}

// collectFailures lists render errors by ascending index, ignoring slots that
// were never attempted because the batch was cancelled.
func collectFailures(participants []Participant, errs []error) []Failure {
	var failures []Failure
	for i, err := range errs {
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			continue
		}
		failures = append(failures, Failure{Index: i, Token: participants[i].Token, Error: err.Error()})
	}
	return failures
}
