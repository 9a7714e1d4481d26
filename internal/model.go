package internal

import "time"

// TimeLayout is the canonical persisted timestamp format: second precision,
// no timezone marker. Stored times are interpreted in the process-local zone.
const TimeLayout = "2006-01-02 15:04:05"

// EventKind is one activity type from the closed, validated set.
type EventKind string

const (
	KindSleep        EventKind = "sleep"
	KindWakeUp       EventKind = "wake_up"
	KindBreakfast    EventKind = "breakfast"
	KindLunch        EventKind = "lunch"
	KindDinner       EventKind = "dinner"
	KindWorkoutStart EventKind = "workout_start"
	KindWorkoutEnd   EventKind = "workout_end"
	KindSmartStart   EventKind = "smart_start"
	KindSmartEnd     EventKind = "smart_end"
)

// UnknownLabel is the display fallback for kinds no longer in the active set.
// Historical records must keep rendering even after a kind is retired.
const UnknownLabel = "unknown"

type kindInfo struct {
	Label string
	Glyph string
}

var kindRegistry = map[EventKind]kindInfo{
	KindSleep:        {Label: "Sleep", Glyph: "😴"},
	KindWakeUp:       {Label: "Wake up", Glyph: "☀️"},
	KindBreakfast:    {Label: "Breakfast", Glyph: "🍳"},
	KindLunch:        {Label: "Lunch", Glyph: "🍜"},
	KindDinner:       {Label: "Dinner", Glyph: "🍽"},
	KindWorkoutStart: {Label: "Workout start", Glyph: "🏋"},
	KindWorkoutEnd:   {Label: "Workout end", Glyph: "🧘"},
	KindSmartStart:   {Label: "Screen time start", Glyph: "📱"},
	KindSmartEnd:     {Label: "Screen time end", Glyph: "🔕"},
}

// AllKinds lists the active set in a fixed display order.
func AllKinds() []EventKind {
	return []EventKind{
		KindSleep, KindWakeUp,
		KindBreakfast, KindLunch, KindDinner,
		KindWorkoutStart, KindWorkoutEnd,
		KindSmartStart, KindSmartEnd,
	}
}

// Valid reports whether k is in the active kind set.
func (k EventKind) Valid() bool {
	_, ok := kindRegistry[k]
	return ok
}

// Label returns the display label, or UnknownLabel for retired kinds.
func (k EventKind) Label() string {
	if info, ok := kindRegistry[k]; ok {
		return info.Label
	}
	return UnknownLabel
}

// Glyph returns the chart marker, or a neutral dot for retired kinds.
func (k EventKind) Glyph() string {
	if info, ok := kindRegistry[k]; ok {
		return info.Glyph
	}
	return "•"
}

// EventRecord is one timestamped occurrence of an event kind for one user.
// Immutable once created; duplicates are allowed, the log never deduplicates.
type EventRecord struct {
	UserID     int64     `json:"user_id"`
	Kind       EventKind `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}
