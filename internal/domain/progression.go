package domain

// StartingLevel is the level of a freshly claimed profile
const StartingLevel = 1

// UserProgression is a user's XP state. XP counts within the current level only.
type UserProgression struct {
	UserID string `json:"user_id" db:"user_id"`
	Level  int    `json:"level" db:"level"`
	XP     int    `json:"xp" db:"xp"`
}

// LevelUp is emitted once per level gained
type LevelUp struct {
	UserID   string `json:"user_id"`
	NewLevel int    `json:"new_level"`
}

// XPGrantResult describes a progression transition
type XPGrantResult struct {
	UserID   string    `json:"user_id"`
	XPGained int       `json:"xp_gained"`
	OldLevel int       `json:"old_level"`
	NewLevel int       `json:"new_level"`
	XP       int       `json:"xp"`
	XPToNext int       `json:"xp_to_next"`
	LevelUps []LevelUp `json:"level_ups,omitempty"`
}

// LeveledUp reports whether at least one level was gained
func (r *XPGrantResult) LeveledUp() bool {
	return len(r.LevelUps) > 0
}

// ProgressView is the read model of a user's progression
type ProgressView struct {
	UserID      string `json:"user_id"`
	Level       int    `json:"level"`
	XP          int    `json:"xp"`
	Requirement int    `json:"requirement"`
	Title       string `json:"title"`
}
