package watcher

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/donkronk/clipstack/internal/clipboard"
	"github.com/donkronk/clipstack/internal/config"
	"github.com/donkronk/clipstack/internal/entry"
	"github.com/donkronk/clipstack/internal/ops"
)

// Watcher polls the clipboard and captures every content change into the
// history. Identical consecutive polls and empty clipboards are skipped;
// read failures are logged and the loop keeps going.
type Watcher struct {
	database *sql.DB
	cfg      *config.Config
	port     clipboard.Port
	logger   *log.Logger
	interval time.Duration

	// OnCapture, when set, is invoked after each successful capture.
	OnCapture func(out *ops.AddOutput, content string)

	mu       sync.Mutex
	running  bool
	lastSeen string
	stop     chan struct{}
	done     chan struct{}
}

// New builds a watcher polling at the configured interval.
func New(database *sql.DB, cfg *config.Config, port clipboard.Port, logger *log.Logger) *Watcher {
	return &Watcher{
		database: database,
		cfg:      cfg,
		port:     port,
		logger:   logger,
		interval: cfg.WatchPollInterval(),
	}
}

// Start launches the polling loop. Calling Start on a running watcher is a
// no-op. The last-seen value starts empty, so whatever is on the clipboard
// is captured on the first poll.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}

	w.lastSeen = ""
	w.stop = make(chan struct{})
	w.done = make(chan struct{})
	w.running = true
	go w.run(w.stop, w.done)

	w.logger.Info("watch started", "interval", w.interval)
}

// Stop halts the polling loop and waits for it to exit. Stopping a watcher
// that never started is a no-op.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	close(w.stop)
	done := w.done
	w.running = false
	w.mu.Unlock()

	<-done
	w.logger.Info("watch stopped")
}

func (w *Watcher) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			w.poll()
		}
	}
}

func (w *Watcher) poll() {
	content, err := w.port.Read(context.Background())
	if err != nil {
		w.logger.Warn("clipboard read failed", "err", err)
		return
	}
	if content == "" || content == w.lastSeen {
		return
	}
	w.lastSeen = content

	out, err := ops.Add(w.database, w.cfg, ops.AddInput{Content: content, Source: entry.SourceWatch})
	if err != nil {
		w.logger.Warn("capture failed", "err", err)
		return
	}

	w.logger.Info("captured", "id", out.ID, "deduped", out.Deduped, "chars", len(content))
	if w.OnCapture != nil {
		w.OnCapture(out, content)
	}
}
