package progression

import "github.com/oliverftrep03/La-Penada-Real/internal/domain"

// Requirement returns the XP needed to leave level
func Requirement(level int) int {
	if level < EarlyLevelCap {
		return max(MinRequirement, level*EarlyXPPerLevel)
	}
	return LateBaseRequirement + (level-(EarlyLevelCap-1))*LateXPPerLevel
}

var titleThresholds = []struct {
	level int
	title string
}{
	{50, TitleSacristan},
	{40, TitlePenonrado},
	{30, TitleCabo},
	{20, TitleExperto},
	{10, TitlePenaprendiz},
	{5, TitleBlandengue},
}

// Title returns the display rank for level
func Title(level int) string {
	for _, t := range titleThresholds {
		if level >= t.level {
			return t.title
		}
	}
	return TitleNewcomer
}

// Apply adds amount XP to state, carrying the overflow across as many levels as it covers.
// It returns the new state and one LevelUp per level gained. amount <= 0 is a no-op.
func Apply(state domain.UserProgression, amount int) (domain.UserProgression, []domain.LevelUp) {
	if state.Level < domain.StartingLevel {
		state.Level = domain.StartingLevel
	}
	if amount <= 0 {
		return state, nil
	}

	var ups []domain.LevelUp
	state.XP += amount
	for state.XP >= Requirement(state.Level) {
		state.XP -= Requirement(state.Level)
		state.Level++
		ups = append(ups, domain.LevelUp{UserID: state.UserID, NewLevel: state.Level})
	}
	return state, ups
}

// View builds the read model for a progression row
func View(p domain.UserProgression) domain.ProgressView {
	return domain.ProgressView{
		UserID:      p.UserID,
		Level:       p.Level,
		XP:          p.XP,
		Requirement: Requirement(p.Level),
		Title:       Title(p.Level),
	}
}
