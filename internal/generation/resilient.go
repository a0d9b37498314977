package generation

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const DefaultMaxAttempts = 3

// Stage says where an attempt ended.
type Stage string

const (
	StageOK        Stage = "ok"
	StageTransport Stage = "transport"
	StageTimeout   Stage = "timeout"
	StageParse     Stage = "parse"
	StageValidate  Stage = "validate"
	StageCanceled  Stage = "canceled"
)

var ErrUnparsable = errors.New("no structured payload in generator output")

// Attempt is one entry of the diagnostic trail. Err is nil only for StageOK.
type Attempt struct {
	Number   int           `json:"number"`
	Stage    Stage         `json:"stage"`
	Err      error         `json:"-"`
	Reason   string        `json:"reason,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Policy describes how to turn raw output into a trusted value.
type Policy[T any] struct {
	Parse       func(raw string) ParseResult[T]
	Validate    func(T) error
	Fallback    T
	MaxAttempts int
	// CallTimeout bounds each single call, 0 leaves calls bounded only by ctx.
	CallTimeout time.Duration
}

type Outcome[T any] struct {
	Value        T
	Attempts     []Attempt
	UsedFallback bool
	ParseKind    ParseKind
}

// Caller performs one call to the external service with an opaque request.
type Caller[Req any] func(ctx context.Context, req Req) (string, error)

// Run calls the service until a parsed value passes validation, at most
// MaxAttempts times and strictly one after another. When no attempt succeeds
// the fallback is returned. Run never fails and never logs, the attempt trail
// in the outcome is for the caller to report.
func Run[Req, T any](ctx context.Context, call Caller[Req], req Req, policy Policy[T]) Outcome[T] {
	maxAttempts := policy.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	outcome := Outcome[T]{
		Value:        policy.Fallback,
		UsedFallback: true,
		ParseKind:    ParseFallback,
		Attempts:     make([]Attempt, 0, maxAttempts),
	}

	for n := 1; n <= maxAttempts; n++ {
		if ctx.Err() != nil {
			outcome.Attempts = append(outcome.Attempts, failed(n, StageCanceled, ctx.Err(), 0))
			return outcome
		}

		started := time.Now()
		raw, err := callWithTimeout(ctx, call, req, policy.CallTimeout)
		took := time.Since(started)
		if err != nil {
			stage := StageTransport
			switch {
			case ctx.Err() != nil:
				// the caller gave up, further attempts cannot succeed
				outcome.Attempts = append(outcome.Attempts, failed(n, StageCanceled, err, took))
				return outcome
			case errors.Is(err, context.DeadlineExceeded):
				stage = StageTimeout
			}
			outcome.Attempts = append(outcome.Attempts, failed(n, stage, err, took))
			continue
		}

		parsed := policy.Parse(raw)
		if !parsed.OK() {
			outcome.Attempts = append(outcome.Attempts, failed(n, StageParse, ErrUnparsable, took))
			continue
		}

		if policy.Validate != nil {
			if err := policy.Validate(parsed.Value); err != nil {
				outcome.Attempts = append(outcome.Attempts, failed(n, StageValidate, err, took))
				continue
			}
		}

		outcome.Attempts = append(outcome.Attempts, Attempt{Number: n, Stage: StageOK, Duration: took})
		outcome.Value = parsed.Value
		outcome.UsedFallback = false
		outcome.ParseKind = parsed.Kind
		return outcome
	}

	return outcome
}

type callResult struct {
	raw string
	err error
}

// callWithTimeout returns when the call does or when the deadline passes,
// whichever comes first, so a call ignoring its context cannot block the loop.
func callWithTimeout[Req any](ctx context.Context, call Caller[Req], req Req, timeout time.Duration) (string, error) {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan callResult, 1)
	go func() {
		raw, err := call(callCtx, req)
		done <- callResult{raw: raw, err: err}
	}()

	select {
	case res := <-done:
		return res.raw, res.err
	case <-callCtx.Done():
		return "", fmt.Errorf("generator call: %w", callCtx.Err())
	}
}

func failed(n int, stage Stage, err error, took time.Duration) Attempt {
	return Attempt{
		Number:   n,
		Stage:    stage,
		Err:      err,
		Reason:   err.Error(),
		Duration: took,
	}
}

// Failures returns the attempts that did not succeed.
func (o Outcome[T]) Failures() []Attempt {
	var result []Attempt
	for _, a := range o.Attempts {
		if a.Stage != StageOK {
			result = append(result, a)
		}
	}
	return result
}
