package storage

import (
	"path/filepath"
	"testing"

	"github.com/mirrorlab/moodmirror/internal/models"
)

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreHistoryRoundTrip(t *testing.T) {
	store := setupTestSQLiteStore(t)

	history := []models.MoodRecord{
		testRecord("30", models.EmotionSurprised),
		testRecord("20", models.EmotionFearful),
		testRecord("10", models.EmotionNeutral),
	}
	if err := store.SaveHistory(history); err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}

	loaded, err := store.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("expected 3 records, got %d", len(loaded))
	}
	// Newest-first order must be preserved exactly.
	for i, want := range []string{"30", "20", "10"} {
		if loaded[i].ID != want {
			t.Errorf("position %d: expected ID %s, got %s", i, want, loaded[i].ID)
		}
	}
	if loaded[0].Caption != "a test caption" || loaded[0].Score != 72 {
		t.Errorf("record fields not round-tripped: %+v", loaded[0])
	}
	if !loaded[0].Timestamp.Equal(history[0].Timestamp) {
		t.Errorf("timestamp mismatch: %v vs %v", loaded[0].Timestamp, history[0].Timestamp)
	}
}

func TestSQLiteStoreSaveReplacesSequence(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if err := store.SaveHistory([]models.MoodRecord{
		testRecord("1", models.EmotionHappy),
		testRecord("2", models.EmotionSad),
	}); err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}

	// A shorter save must fully replace the old sequence, not append.
	if err := store.SaveHistory([]models.MoodRecord{testRecord("3", models.EmotionAngry)}); err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}

	loaded, err := store.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "3" {
		t.Errorf("expected single record 3, got %+v", loaded)
	}

	// And an empty save clears it entirely.
	if err := store.SaveHistory(nil); err != nil {
		t.Fatalf("SaveHistory of empty sequence failed: %v", err)
	}
	loaded, err = store.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty history, got %d records", len(loaded))
	}
}

func TestSQLiteStoreSettings(t *testing.T) {
	store := setupTestSQLiteStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("expected default settings, got %+v", settings)
	}

	settings.Theme = "dark"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.Theme != "dark" {
		t.Errorf("expected dark theme, got %q", got.Theme)
	}
}

func TestSQLiteStoreLoadFreshPath(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "fresh.db"))
	defer store.Close()

	if err := store.Load(); err != nil {
		t.Fatalf("Load on a fresh path should not fail: %v", err)
	}
	history, err := store.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history, got %d records", len(history))
	}
}
