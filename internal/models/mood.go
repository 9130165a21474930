package models

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// Emotion is the classification label produced by the analysis backend.
// Values outside the known set are kept as-is on the record but normalize
// to EmotionNeutral for every display lookup.
type Emotion string

const (
	EmotionHappy     Emotion = "happy"
	EmotionSad       Emotion = "sad"
	EmotionAngry     Emotion = "angry"
	EmotionNeutral   Emotion = "neutral"
	EmotionSurprised Emotion = "surprised"
	EmotionFearful   Emotion = "fearful"
)

// Emotions lists the known emotions in a stable order.
var Emotions = []Emotion{
	EmotionHappy,
	EmotionSad,
	EmotionAngry,
	EmotionNeutral,
	EmotionSurprised,
	EmotionFearful,
}

// Known reports whether e is one of the fixed emotion set.
func (e Emotion) Known() bool {
	switch e {
	case EmotionHappy, EmotionSad, EmotionAngry, EmotionNeutral, EmotionSurprised, EmotionFearful:
		return true
	}
	return false
}

// Display returns e if known, EmotionNeutral otherwise. All styling, color
// and emoji lookups go through Display so an unrecognized backend value can
// never break rendering.
func (e Emotion) Display() Emotion {
	if e.Known() {
		return e
	}
	return EmotionNeutral
}

// Title returns the emotion capitalized for presentation ("happy" -> "Happy").
func (e Emotion) Title() string {
	s := string(e)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Source identifies which input modality produced a record.
type Source string

const (
	SourceText  Source = "text"
	SourceImage Source = "image"
)

// MoodRecord is one analyzed submission plus client-assigned metadata.
// It is immutable once created.
type MoodRecord struct {
	ID        string    `json:"id"`
	Emotion   Emotion   `json:"emotion"`
	Score     float64   `json:"score"`
	Caption   string    `json:"caption,omitempty"`
	Source    Source    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a creation-time token encoded as a decimal string.
// Unix milliseconds, bumped by one when two records land in the same
// millisecond so IDs stay unique and monotonic within a process.
func NewID(t time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()

	ms := t.UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}

// NewMoodRecord builds a record from a backend analysis result. The emotion,
// score and caption come from the response; id, source and timestamp are
// always client-assigned and override anything the backend sent.
func NewMoodRecord(emotion string, score float64, caption string, source Source, now time.Time) MoodRecord {
	return MoodRecord{
		ID:        NewID(now),
		Emotion:   Emotion(emotion),
		Score:     score,
		Caption:   caption,
		Source:    source,
		Timestamp: now,
	}
}
