// Package events publishes ranking lifecycle events to NATS.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/nats-io/nats.go"
)

// Conn is the subset of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
	Close()
}

// SubjectRankingCompleted is the subject a finished ranking is published on.
func SubjectRankingCompleted(runID string) string { return "fuzzyrank.ranking." + runID + ".completed" }

// RankedAlternative is one row of a RankingCompletedEvent.
type RankedAlternative struct {
	Rank        int     `json:"rank"`
	Alternative string  `json:"alternative"`
	Closeness   float64 `json:"closeness"`
	Label       string  `json:"label"`
}

// RankingCompletedEvent is the payload of SubjectRankingCompleted.
type RankingCompletedEvent struct {
	RunID        string              `json:"run_id"`
	Fingerprint  string              `json:"fingerprint"`
	CacheHit     bool                `json:"cache_hit"`
	DurationMs   int64               `json:"duration_ms"`
	Experts      int                 `json:"experts"`
	Criteria     int                 `json:"criteria"`
	Alternatives int                 `json:"alternatives"`
	Ranking      []RankedAlternative `json:"ranking"`
	Timestamp    time.Time           `json:"timestamp"`
}

// NewRankingCompletedEvent builds the event for a finished run.
func NewRankingCompletedEvent(run schema.Run) RankingCompletedEvent {
	ranking := make([]RankedAlternative, len(run.Result.Ranking))
	for i, e := range run.Result.Ranking {
		ranking[i] = RankedAlternative{
			Rank:        i + 1,
			Alternative: e.Alternative,
			Closeness:   e.Closeness,
			Label:       contract.GetPlainLabel(e.Closeness),
		}
	}
	return RankingCompletedEvent{
		RunID:        run.RunID,
		Fingerprint:  run.Result.Fingerprint,
		CacheHit:     run.CacheHit,
		DurationMs:   run.Duration.Milliseconds(),
		Experts:      run.Result.NumExperts,
		Criteria:     run.Result.NumCriteria,
		Alternatives: run.Result.NumAlternatives,
		Ranking:      ranking,
		Timestamp:    run.StartedAt.Add(run.Duration).UTC(),
	}
}

// NATSPublisher publishes ranking events over a NATS connection.
type NATSPublisher struct {
	conn   Conn
	logger *slog.Logger
}

var _ contract.Publisher = (*NATSPublisher)(nil)

// NewNATSPublisher connects to url. The connection keeps retrying in the
// background, so a broker that starts later is picked up.
func NewNATSPublisher(url string, logger *slog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("fuzzyrank"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return NewPublisher(nc, logger), nil
}

// NewPublisher wraps an existing connection.
func NewPublisher(conn Conn, logger *slog.Logger) *NATSPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NATSPublisher{conn: conn, logger: logger}
}

// PublishRankingCompleted publishes run on SubjectRankingCompleted.
func (p *NATSPublisher) PublishRankingCompleted(run schema.Run) error {
	payload, err := json.Marshal(NewRankingCompletedEvent(run))
	if err != nil {
		return err
	}
	subject := SubjectRankingCompleted(run.RunID)
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.logger.Debug("published ranking event", "subject", subject, "bytes", len(payload))
	return nil
}

// Close closes the underlying connection.
func (p *NATSPublisher) Close() {
	p.conn.Close()
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishRankingCompleted(schema.Run) error { return nil }
func (NopPublisher) Close()                                   {}
