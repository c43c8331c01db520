package progression

// Level curve
const (
	// EarlyLevelCap is the first level priced by the steep late-game curve
	EarlyLevelCap = 10

	// EarlyXPPerLevel scales the requirement of levels below EarlyLevelCap
	EarlyXPPerLevel = 10

	// MinRequirement is the floor of every early requirement
	MinRequirement = 10

	// LateBaseRequirement is the requirement of level EarlyLevelCap-1 that the late curve extends
	LateBaseRequirement = 90

	// LateXPPerLevel is added per level from EarlyLevelCap on
	LateXPPerLevel = 15
)

// Level titles, highest first
const (
	TitleSacristan   = "Sacristán de la Peñada Real"
	TitlePenonrado   = "Peñonrado"
	TitleCabo        = "Cabo de la Peñíscola"
	TitleExperto     = "Peñista Experimentado"
	TitlePenaprendiz = "Peñaprendiz"
	TitleBlandengue  = "Blandengue de la Peñada"
	TitleNewcomer    = "Recién Llegado"
)

// Log messages
const (
	LogMsgXPGranted = "XP granted"
	LogMsgLeveledUp = "User leveled up"
)

// Error messages
const (
	ErrMsgBeginTxFailed           = "failed to begin transaction: %w"
	ErrMsgCommitFailed            = "failed to commit transaction: %w"
	ErrMsgLockProgressionFailed   = "failed to lock progression: %w"
	ErrMsgUpdateProgressionFailed = "failed to update progression: %w"
	ErrMsgGetProgressionFailed    = "failed to get progression: %w"
	ErrFmtAmountNotPositive       = "%w: xp amount must be positive, got %d"
)
