package main

// Difficulty modes
const (
	ModeEasy   = "easy"
	ModeMedium = "medium"
	ModeHard   = "hard"
)

// Stage scoring: points awarded for a correct guess at each clue stage.
const (
	StageOneScore   = 100
	StageTwoScore   = 60
	StageThreeScore = 30
)

// Selection tuning constants
const (
	EasySubscriberMin   = 1_000_000 // easy mode requires a known count at or above this
	MediumSubscriberMin = 100_000   // medium mode requires a known count at or above this
	MinCommentLength    = 25        // shorter comments are never selectable from the primary pool

	GlobalListingLimit    = 100 // posts pulled from the cross-community feed
	CommunityScanLimit    = 50  // candidates inspected before falling back
	QualifiedCandidateCap = 8   // qualifying communities collected before stopping the scan
	UnknownSafeCap        = 8   // unknown-count but otherwise safe communities kept as a fallback
	CommunityListingLimit = 50  // posts pulled from the chosen community
	CommentFetchLimit     = 200 // comments fetched from the chosen post
)

// Day-key handling
const (
	DayKeyFormat = "2006-01-02"
	DaySkew      = 1 // client day keys accepted within this many days of UTC today
)

// Listing sort orders understood by the content source
const (
	SortNew = "new"
	SortHot = "hot"
)

// Per-day flag names
const (
	FlagCommitted     = "committed"
	FlagPointsAwarded = "points"
	FlagCompleted     = "completed"
)

// Player identity
const (
	PlayerCookieName = "player_id"
	AnonymousPlayer  = "anonymous"
)

// Route constants
const (
	RouteState   = "/api/state"
	RouteCommit  = "/api/commit"
	RouteGuess   = "/api/guess"
	RouteGiveUp  = "/api/giveup"
	RouteStats   = "/api/stats"
	RouteHealthz = "/healthz"
)

// Error message constants
const (
	ErrorPuzzleUnavailable = "puzzle unavailable, please try again"
	ErrorStateUnavailable  = "could not load game state, please try again"
)

type contextKey string

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
