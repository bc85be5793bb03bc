package models

import "time"

// Trophy kinds.
const (
	KindCard      = "card"
	KindBadge     = "badge"
	KindCharacter = "character"
)

// Trophy is a catalog entry. The catalog is seeded once at first run
// and never regenerated unless it is empty.
type Trophy struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"type"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// AcquiredTrophy records a one-time grant. At most one exists per
// trophy id; the orchestrator enforces that, not the storage layer.
type AcquiredTrophy struct {
	ID         string    `json:"id"`
	TrophyID   string    `json:"trophyId"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

// DailyChallenge is today's pick. Exactly one is persisted at a time
// and it is overwritten in place when Date no longer matches today.
type DailyChallenge struct {
	TrophyID string `json:"trophyId"`
	Date     string `json:"date"`
}
