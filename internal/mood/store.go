// Package mood holds the session state for mood analysis: the current
// result, the rolling history, the loading flag and the last error. It is
// the single writer for all of them and mediates between the presentation
// layer, the analysis client and persistent storage.
package mood

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/mirrorlab/moodmirror/internal/api"
	"github.com/mirrorlab/moodmirror/internal/constants"
	"github.com/mirrorlab/moodmirror/internal/logger"
	"github.com/mirrorlab/moodmirror/internal/models"
	"github.com/mirrorlab/moodmirror/internal/storage"
)

// ErrEmptyInput marks a submission rejected locally: empty text or a missing
// file. No request is made and no state changes; callers decide whether to
// mention it at all.
var ErrEmptyInput = errors.New("nothing to analyze")

// User-facing failure messages. Request and network failures share them;
// the distinction lives only in logs.
const (
	MsgTextFailed  = "Failed to analyze text"
	MsgImageFailed = "Failed to analyze image"
)

// Analyzer is the slice of the analysis client the store needs.
type Analyzer interface {
	AnalyzeText(ctx context.Context, text string) (*api.Result, error)
	AnalyzeImage(ctx context.Context, path string) (*api.Result, error)
}

// Generation tags one submission. A resolution carrying a stale generation
// is discarded wholesale, so the latest submission alone decides the
// current mood, error and loading flag.
type Generation uint64

// Store owns the mood session state. Not safe for concurrent use: all
// mutation happens on the event-loop goroutine, asynchronous work re-enters
// through Resolve.
type Store struct {
	client  Analyzer
	persist storage.Provider

	current *models.MoodRecord
	history []models.MoodRecord
	loading bool
	errMsg  string
	gen     Generation
}

// NewStore loads persisted history through the provider (which must already
// be loaded) and returns a store ready for submissions. A history read
// failure is logged and treated as an empty history, never fatal.
func NewStore(client Analyzer, persist storage.Provider) *Store {
	history, err := persist.History()
	if err != nil {
		logger.Warn("failed to load mood history, starting empty", "error", err)
		history = nil
	}
	return &Store{
		client:  client,
		persist: persist,
		history: history,
	}
}

// Client returns the analyzer behind this store, for callers that issue the
// network call off the event loop.
func (s *Store) Client() Analyzer {
	return s.client
}

// Current returns the current mood, or nil when absent.
func (s *Store) Current() *models.MoodRecord {
	return s.current
}

// History returns the rolling history, newest first.
func (s *Store) History() []models.MoodRecord {
	out := make([]models.MoodRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Loading reports whether a submission is in flight.
func (s *Store) Loading() bool {
	return s.loading
}

// Err returns the last failure message, empty when the last submission
// succeeded or none was made.
func (s *Store) Err() string {
	return s.errMsg
}

// Begin starts a submission: loading on, error cleared, and a fresh
// generation number that the eventual Resolve must present.
func (s *Store) Begin() Generation {
	s.gen++
	s.loading = true
	s.errMsg = ""
	return s.gen
}

// Resolve settles the submission tagged gen. Stale generations are dropped
// entirely: no state change, no persistence. On success the new record is
// prepended to history (evicting beyond the cap), persisted, and becomes the
// current mood. On failure the error message is set and history and current
// stay untouched. Loading clears either way.
//
// The returned record is non-nil only for an applied success; applied
// reports whether the resolution took effect at all.
func (s *Store) Resolve(gen Generation, source models.Source, res *api.Result, err error) (rec *models.MoodRecord, applied bool) {
	if gen != s.gen {
		logger.Debug("discarding stale analysis response", "generation", gen, "latest", s.gen)
		return nil, false
	}

	s.loading = false

	if err != nil {
		s.errMsg = failureMessage(source)
		logger.Warn("analysis failed", "source", source, "error", err)
		return nil, true
	}

	record := models.NewMoodRecord(res.Emotion, res.Score, res.Caption, source, time.Now())
	s.history = append([]models.MoodRecord{record}, s.history...)
	if len(s.history) > constants.HistoryLimit {
		s.history = s.history[:constants.HistoryLimit]
	}
	s.current = &record
	s.saveHistory()

	return &record, true
}

// SubmitText analyzes free text synchronously. Text that trims to empty is
// rejected with ErrEmptyInput before any request or state change. The
// returned error is the underlying client error; Err holds the user-facing
// message.
func (s *Store) SubmitText(ctx context.Context, text string) (*models.MoodRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	gen := s.Begin()
	res, err := s.client.AnalyzeText(ctx, text)
	rec, _ := s.Resolve(gen, models.SourceText, res, err)
	return rec, err
}

// SubmitImage analyzes the image file at path synchronously, with the same
// contract as SubmitText. An empty or nonexistent path is a local rejection.
func (s *Store) SubmitImage(ctx context.Context, path string) (*models.MoodRecord, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyInput
	}
	if _, err := os.Stat(path); err != nil {
		return nil, ErrEmptyInput
	}

	gen := s.Begin()
	res, err := s.client.AnalyzeImage(ctx, path)
	rec, _ := s.Resolve(gen, models.SourceImage, res, err)
	return rec, err
}

// ClearCurrent drops the current mood; history is untouched.
func (s *Store) ClearCurrent() {
	s.current = nil
}

// RemoveFromHistory deletes the entry with the given id, preserving the
// relative order of the rest. A missing id is a silent no-op. The current
// mood is untouched even when it referenced the removed record.
func (s *Store) RemoveFromHistory(id string) {
	kept := s.history[:0:0]
	for _, rec := range s.history {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(s.history) {
		return
	}
	s.history = kept
	s.saveHistory()
}

// saveHistory mirrors the full sequence to storage, empty included, so a
// cleared history survives a restart. A write failure is logged but never
// surfaced; worst case the user sees a stale view next session.
func (s *Store) saveHistory() {
	if err := s.persist.SaveHistory(s.history); err != nil {
		logger.Warn("failed to persist mood history", "error", err)
	}
}

func failureMessage(source models.Source) string {
	if source == models.SourceImage {
		return MsgImageFailed
	}
	return MsgTextFailed
}
