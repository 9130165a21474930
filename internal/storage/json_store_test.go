package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mirrorlab/moodmirror/internal/models"
)

func testRecord(id string, emotion models.Emotion) models.MoodRecord {
	return models.MoodRecord{
		ID:        id,
		Emotion:   emotion,
		Score:     72,
		Caption:   "a test caption",
		Source:    models.SourceText,
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "mood.json"))

	if err := store.Load(); err != nil {
		t.Fatalf("loading a missing file should not fail: %v", err)
	}

	history, err := store.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history, got %d records", len(history))
	}
}

func TestJSONStoreLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write malformed file: %v", err)
	}

	store := NewJSONStore(path)

	// Malformed content is swallowed: logged, empty history, not fatal.
	if err := store.Load(); err != nil {
		t.Fatalf("malformed content should not be fatal: %v", err)
	}

	history, err := store.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history after parse failure, got %d records", len(history))
	}
}

func TestJSONStoreHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood.json")

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	history := []models.MoodRecord{
		testRecord("3", models.EmotionHappy),
		testRecord("2", models.EmotionSad),
		testRecord("1", models.EmotionAngry),
	}
	if err := store.SaveHistory(history); err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}

	// Simulate a fresh session.
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	loaded, err := reopened.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}

	if len(loaded) != len(history) {
		t.Fatalf("expected %d records, got %d", len(history), len(loaded))
	}
	for i := range history {
		if loaded[i].ID != history[i].ID {
			t.Errorf("record %d: expected ID %s, got %s", i, history[i].ID, loaded[i].ID)
		}
		if loaded[i].Emotion != history[i].Emotion {
			t.Errorf("record %d: expected emotion %s, got %s", i, history[i].Emotion, loaded[i].Emotion)
		}
		if !loaded[i].Timestamp.Equal(history[i].Timestamp) {
			t.Errorf("record %d: timestamp mismatch", i)
		}
	}
}

func TestJSONStorePersistsEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood.json")

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.SaveHistory([]models.MoodRecord{testRecord("1", models.EmotionHappy)}); err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}

	// Removing the last entry must survive a restart: an empty sequence is
	// written out rather than skipped.
	if err := store.SaveHistory(nil); err != nil {
		t.Fatalf("SaveHistory of empty sequence failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	loaded, err := reopened.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected the cleared history to persist, got %d records", len(loaded))
	}
}

func TestJSONStoreSettingsSeparateFromHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood.json")

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("expected default settings, got %+v", settings)
	}

	settings.Theme = "dark"
	settings.PaletteStyle = "neon"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.Theme != "dark" || got.PaletteStyle != "neon" {
		t.Errorf("settings not persisted: %+v", got)
	}

	// Saving settings must not touch history.
	history, err := reopened.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected untouched empty history, got %d records", len(history))
	}
}

func TestJSONStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("expected Init to refuse an already-initialized path")
	}
}
