package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/byteZorvin/piltover/internal/model"
)

var (
	settlementUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "piltover",
		Subsystem: "settlement",
		Name:      "updates_total",
		Help:      "Count of state update submissions by outcome.",
	}, []string{"outcome"})

	settlementUpdateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "piltover",
		Subsystem: "settlement",
		Name:      "update_duration_seconds",
		Help:      "Duration of state update submissions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	settlementDecodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "piltover",
		Subsystem: "settlement",
		Name:      "decode_duration_seconds",
		Help:      "Duration of program output decoding.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	settlementStreamLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "piltover",
		Subsystem: "settlement",
		Name:      "stream_length_elements",
		Help:      "Number of field elements per submitted output stream.",
		Buckets:   prometheus.ExponentialBuckets(16, 2, 14),
	})

	settlementMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "piltover",
		Subsystem: "settlement",
		Name:      "messages_total",
		Help:      "Count of messages recorded from accepted updates.",
	}, []string{"direction"})
)

// Settlement tracks metrics for the state update pipeline.
type Settlement struct{}

// NewSettlement creates a Settlement metrics collector.
func NewSettlement() *Settlement {
	return &Settlement{}
}

// ObserveUpdate records the outcome and duration of one submission. The
// outcome label carries the stable error class so dashboards separate
// sequencing rejections from corrupt streams.
func (m Settlement) ObserveUpdate(err error, started time.Time) {
	outcome := updateOutcome(err)
	settlementUpdatesTotal.WithLabelValues(outcome).Inc()
	settlementUpdateDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveDecode records one decode attempt and the raw stream length.
func (m Settlement) ObserveDecode(err error, streamLen int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	settlementDecodeDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	settlementStreamLength.Observe(float64(streamLen))
}

// ObserveMessages records the message volume of an accepted update.
func (m Settlement) ObserveMessages(toStarknet, toAppchain int) {
	settlementMessages.WithLabelValues("to_starknet").Add(float64(toStarknet))
	settlementMessages.WithLabelValues("to_appchain").Add(float64(toAppchain))
}

func updateOutcome(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, model.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, model.ErrUnsupportedMode):
		return "unsupported_mode"
	case errors.Is(err, model.ErrMalformedStream):
		return "malformed_stream"
	case errors.Is(err, model.ErrInvalidPreviousBlockNumber),
		errors.Is(err, model.ErrInvalidPreviousBlockHash),
		errors.Is(err, model.ErrInvalidPreviousRoot),
		errors.Is(err, model.ErrInvalidBlockNumber):
		return "invalid_transition"
	case errors.Is(err, model.ErrInvalidConfigHash):
		return "invalid_config"
	case errors.Is(err, model.ErrInvalidFact):
		return "invalid_fact"
	default:
		return "error"
	}
}
