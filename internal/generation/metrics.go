package generation

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented counts generation calls by backend and outcome.
type Instrumented struct {
	next     Generator
	backend  string
	requests *prometheus.CounterVec
}

// Instrument wraps next and registers generation_requests_total on reg.
func Instrument(next Generator, backend string, reg prometheus.Registerer) (*Instrumented, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_requests_total",
			Help: "Total number of text generation calls",
		},
		[]string{"backend", "outcome"},
	)
	if err := reg.Register(requests); err != nil {
		return nil, err
	}
	return &Instrumented{next: next, backend: backend, requests: requests}, nil
}

func (i *Instrumented) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := i.next.Generate(ctx, req)
	i.requests.WithLabelValues(i.backend, outcome(err)).Inc()
	return resp, err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	default:
		return "error"
	}
}
