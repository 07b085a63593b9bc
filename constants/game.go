package constants

// Loop Structure
const (
	// MaxLoops is the loop count at which the eternal ending is forced
	MaxLoops = 15

	// PhaseThreshold is the loop count that unlocks the suspense phase
	PhaseThreshold = 5

	// DaysPerLoop is the length of one loop in story days
	DaysPerLoop = 3

	// EndingCheckDay is the first day on which the session evaluates endings
	EndingCheckDay = 3
)

// Attribute Bounds & Defaults
const (
	AttributeMin = 0
	AttributeMax = 100

	DefaultSanity    = 85
	DefaultIntuition = 30
	DefaultCourage   = 40
	DefaultLogic     = 35

	// GenderBonus is applied to courage (male) or intuition (other) at new game
	GenderBonus = 5
)

// Collectibles
const (
	ClueCount      = 20
	MemoryCount    = 10
	SecretLevelMax = 5
)

// Affection Tier Thresholds (inclusive lower bounds)
const (
	AffectionIntimate   = 80
	AffectionFriendly   = 60
	AffectionNormal     = 40
	AffectionAcquainted = 20
)

// Ending Thresholds
const (
	EndingPointThreshold     = 8
	RomanticAffectionMinimum = 80
	TragicSanityCeiling      = 20
	NightmareSanityCeiling   = 10
)
