package storage_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/mirrorlab/moodmirror/internal/models"
	"github.com/mirrorlab/moodmirror/internal/storage"
)

// generateTime produces an arbitrary time.Time truncated to second precision
// to match JSON round-trip fidelity (RFC3339).
func generateTime(t *rapid.T, label string) time.Time {
	sec := rapid.Int64Range(1_000_000_000, 1_900_000_000).Draw(t, label+"_unix_sec")
	return time.Unix(sec, 0).UTC()
}

// generateHistory produces an arbitrary newest-first mood history of up to
// the cap length, with unique IDs.
func generateHistory(t *rapid.T) []models.MoodRecord {
	emotions := []string{"happy", "sad", "angry", "neutral", "surprised", "fearful", "confused"}
	sources := []models.Source{models.SourceText, models.SourceImage}

	n := rapid.IntRange(0, 10).Draw(t, "len")
	history := make([]models.MoodRecord, n)
	for i := range history {
		history[i] = models.MoodRecord{
			ID:        fmt.Sprintf("%d-%d", rapid.Int64Range(1, 1<<50).Draw(t, "id"), i),
			Emotion:   models.Emotion(rapid.SampledFrom(emotions).Draw(t, "emotion")),
			Score:     float64(rapid.IntRange(0, 100).Draw(t, "score")),
			Caption:   rapid.StringN(0, 80, -1).Draw(t, "caption"),
			Source:    rapid.SampledFrom(sources).Draw(t, "source"),
			Timestamp: generateTime(t, "ts"),
		}
	}
	return history
}

func checkRoundTrip(t *rapid.T, original, loaded []models.MoodRecord) {
	if len(loaded) != len(original) {
		t.Fatalf("length mismatch: got %d, want %d", len(loaded), len(original))
	}
	for i := range original {
		want, got := original[i], loaded[i]
		if got.ID != want.ID {
			t.Errorf("record %d: ID mismatch: got %q, want %q", i, got.ID, want.ID)
		}
		if got.Emotion != want.Emotion {
			t.Errorf("record %d: emotion mismatch: got %q, want %q", i, got.Emotion, want.Emotion)
		}
		if got.Score != want.Score {
			t.Errorf("record %d: score mismatch: got %v, want %v", i, got.Score, want.Score)
		}
		if got.Caption != want.Caption {
			t.Errorf("record %d: caption mismatch: got %q, want %q", i, got.Caption, want.Caption)
		}
		if got.Source != want.Source {
			t.Errorf("record %d: source mismatch: got %q, want %q", i, got.Source, want.Source)
		}
		if !got.Timestamp.Equal(want.Timestamp) {
			t.Errorf("record %d: timestamp mismatch: got %v, want %v", i, got.Timestamp, want.Timestamp)
		}
	}
}

// Persisting a history then reloading in a fresh session reproduces the same
// sequence with all fields intact.
func TestJSONStoreRoundTripProperty(t *testing.T) {
	dir := t.TempDir()

	rapid.Check(t, func(t *rapid.T) {
		path := filepath.Join(dir, fmt.Sprintf("mood-%d.json", rapid.Int64Range(0, 1<<40).Draw(t, "file")))

		store := storage.NewJSONStore(path)
		if err := store.Load(); err != nil {
			t.Fatalf("Load: %v", err)
		}

		original := generateHistory(t)
		if err := store.SaveHistory(original); err != nil {
			t.Fatalf("SaveHistory: %v", err)
		}

		reopened := storage.NewJSONStore(path)
		if err := reopened.Load(); err != nil {
			t.Fatalf("reload: %v", err)
		}
		loaded, err := reopened.History()
		if err != nil {
			t.Fatalf("History: %v", err)
		}

		checkRoundTrip(t, original, loaded)
	})
}

func TestSQLiteStoreRoundTripProperty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood.db")
	store := storage.NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer store.Close()

	rapid.Check(t, func(t *rapid.T) {
		original := generateHistory(t)
		if err := store.SaveHistory(original); err != nil {
			t.Fatalf("SaveHistory: %v", err)
		}

		loaded, err := store.History()
		if err != nil {
			t.Fatalf("History: %v", err)
		}

		checkRoundTrip(t, original, loaded)
	})
}
