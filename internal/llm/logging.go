package llm

import (
	"context"
	"log/slog"
	"time"
)

type logging struct {
	inner  Provider
	logger *slog.Logger
}

// WithLogging logs each request at debug level and each failure at warn.
func WithLogging(p Provider, logger *slog.Logger) Provider {
	return &logging{inner: p, logger: logger}
}

func (l *logging) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	attrs := []slog.Attr{
		slog.String("purpose", PurposeFrom(ctx)),
		slog.String("model", l.inner.ModelID()),
		slog.Duration("latency", time.Since(start)),
		slog.Int("messages", len(req.Messages)),
	}
	if req.Schema != nil {
		attrs = append(attrs, slog.String("schema", req.Schema.Name))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("err", err))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "llm request failed", attrs...)
		return nil, err
	}
	attrs = append(attrs,
		slog.String("served_by", resp.Model),
		slog.Int("input_tokens", resp.Usage.InputTokens),
		slog.Int("output_tokens", resp.Usage.OutputTokens),
		slog.String("stop", resp.StopReason),
	)
	l.logger.LogAttrs(ctx, slog.LevelDebug, "llm request", attrs...)
	return resp, nil
}

func (l *logging) ModelID() string { return l.inner.ModelID() }
