package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LoggingProvider records every request's latency, token usage and
// estimated cost.
type LoggingProvider struct {
	inner Provider
	log   zerolog.Logger
}

// WithLogging wraps p with request logging.
func WithLogging(p Provider, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := l.log.Info()
	if err != nil {
		ev = l.log.Warn().Err(err)
	}
	ev = ev.
		Str("model", l.inner.ModelID()).
		Str("purpose", string(PurposeFrom(ctx))).
		Dur("latency", time.Since(start)).
		Int("messages", len(req.Messages))
	if req.Schema != nil {
		ev = ev.Str("schema", req.Schema.Name)
	}
	if resp != nil {
		ev = ev.
			Str("served_by", resp.Model).
			Int("input_tokens", resp.Usage.InputTokens).
			Int("output_tokens", resp.Usage.OutputTokens).
			Str("stop", resp.StopReason)
		if usd, ok := EstimateCost(resp.Model, resp.Usage); ok {
			ev = ev.Float64("cost_usd", usd)
		}
	}
	ev.Msg("llm request")

	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }
