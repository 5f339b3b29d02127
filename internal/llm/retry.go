package llm

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

type retrying struct {
	inner Provider
	cfg   RetryConfig
	sleep func(context.Context, time.Duration) error
}

// WithRetry retries unavailable and rate-limited requests with jittered
// exponential backoff. Invalid output is retried once; truncation and
// context errors are returned immediately.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retrying{inner: p, cfg: cfg, sleep: sleepCtx}
}

func (r *retrying) Generate(ctx context.Context, req Request) (*Response, error) {
	invalidSeen := false
	var err error
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		kind, ok := KindOf(err)
		if !ok || kind == KindTruncated || ctx.Err() != nil {
			return nil, err
		}
		if kind == KindInvalidOutput {
			if invalidSeen {
				return nil, err
			}
			invalidSeen = true
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		if serr := r.sleep(ctx, r.wait(attempt, err)); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

func (r *retrying) ModelID() string { return r.inner.ModelID() }

// wait returns the server's RetryAfter when given, otherwise the backoff
// for attempt with 20% jitter.
func (r *retrying) wait(attempt int, err error) time.Duration {
	if e, ok := err.(*Error); ok && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if max := float64(r.cfg.MaxWait); max > 0 && d > max {
		d = max
	}
	d *= 0.8 + 0.4*rand.Float64()
	return time.Duration(d)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
