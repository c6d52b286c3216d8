// Package daemon provides the long-running group-ledger watch service.
// It polls the balance server on an interval, diffs consecutive snapshots
// and republishes changes over a small local HTTP API, so shell prompts or
// status bars can show the group's debt state without opening the TUI.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"splitsnap/internal/model"
	"splitsnap/internal/pipeline"
	"splitsnap/internal/store"
)

// Fetcher is the slice of the API client the watcher needs.
type Fetcher interface {
	FetchBalances(ctx context.Context) (model.BalanceSheet, error)
}

// Config controls the watch runtime behavior.
type Config struct {
	ServerURL    string
	Interval     time.Duration
	Addr         string
	EventsBuffer int
	SessionPath  string
}

// Snapshot is a compact ledger state for status/event payloads.
type Snapshot struct {
	At              time.Time `json:"at"`
	Expenses        int       `json:"expenses"`
	TotalSpend      float64   `json:"total_spend"`
	OpenSettlements int       `json:"open_settlements"`
	TotalOwed       float64   `json:"total_owed"`
	TopCategory     string    `json:"top_category,omitempty"`
	Settled         bool      `json:"settled"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	Expenses        int     `json:"expenses"`
	TotalSpend      float64 `json:"total_spend"`
	OpenSettlements int     `json:"open_settlements"`
	TotalOwed       float64 `json:"total_owed"`
}

func (d Delta) isZero() bool {
	return d.Expenses == 0 &&
		d.TotalSpend == 0 &&
		d.OpenSettlements == 0 &&
		d.TotalOwed == 0
}

// Event is emitted whenever the ledger snapshot changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	ServerURL       string    `json:"server_url"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the watch runtime and HTTP API.
type Service struct {
	cfg    Config
	client Fetcher

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new watch service with the provided config and client.
func New(cfg Config, client Fetcher) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}

	return &Service{
		cfg:       cfg,
		client:    client,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce(ctx)
		case err := <-errCh:
			return fmt.Errorf("watch http server: %w", err)
		}
	}
}

func (s *Service) pollOnce(ctx context.Context) {
	sheet, err := s.client.FetchBalances(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = time.Now()
		s.pollCount++
		s.mu.Unlock()
		log.Printf("splitsnap watch poll error: %v", err)
		return
	}

	now := time.Now()
	snap := snapshotFromSheet(sheet, now)
	s.cacheSheet(sheet)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: now,
			Snapshot:  snap,
			Delta:     Delta{},
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      "ledger_delta",
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.publishEvent(ev)
	}
}

// cacheSheet keeps the local session store in sync with each poll, so
// the CLI's offline fallback stays fresh while the watcher runs.
func (s *Service) cacheSheet(sheet model.BalanceSheet) {
	if s.cfg.SessionPath == "" {
		return
	}
	sess, err := store.Open(s.cfg.SessionPath)
	if err != nil {
		return
	}
	defer func() { _ = sess.Close() }()
	_ = sess.SaveSheet(sheet)
}

func snapshotFromSheet(sheet model.BalanceSheet, at time.Time) Snapshot {
	var owed float64
	for _, st := range sheet.Settlements {
		if st.Amount.Valid {
			owed += st.Amount.Magnitude()
		}
	}

	var top string
	buckets := pipeline.SortedCategories(pipeline.CategoryTotals(sheet.Expenses))
	if len(buckets) > 0 {
		top = buckets[0].Category
	}

	return Snapshot{
		At:              at,
		Expenses:        len(sheet.Expenses),
		TotalSpend:      pipeline.TotalSpend(sheet.Expenses),
		OpenSettlements: len(sheet.Settlements),
		TotalOwed:       owed,
		TopCategory:     top,
		Settled:         sheet.Settled(),
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		Expenses:        curr.Expenses - prev.Expenses,
		TotalSpend:      curr.TotalSpend - prev.TotalSpend,
		OpenSettlements: curr.OpenSettlements - prev.OpenSettlements,
		TotalOwed:       curr.TotalOwed - prev.TotalOwed,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		ServerURL:       s.cfg.ServerURL,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
