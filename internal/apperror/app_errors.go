package apperror

import "errors"

// Move rejections. Every precondition violation of a move submission maps to
// exactly one of these sentinels and carries a machine-readable reason tag.
var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrCellOccupied   = errors.New("cell is already claimed")
	ErrCellOutOfRange = errors.New("cell is out of range")
)

// Session configuration rejections.
var (
	ErrNotEnoughPlayers = errors.New("a game needs at least two players")
	ErrTooManyPlayers   = errors.New("maximum count of players reached")
	ErrDuplicatePlayer  = errors.New("player listed more than once")
	ErrInvalidBoardSize = errors.New("board size must be at least 2")
	ErrUnknownPlayer    = errors.New("player is not a registered user")
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Reason tags surfaced to clients on move rejections.
const (
	ReasonGameOver       = "game_over"
	ReasonNotYourTurn    = "not_your_turn"
	ReasonAlreadyClaimed = "already_claimed"
	ReasonOutOfRange     = "out_of_range"
)

// Reason - returns the machine-readable tag for a move rejection, or an empty
// string when the error is not one.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrGameFinished):
		return ReasonGameOver
	case errors.Is(err, ErrNotYourTurn):
		return ReasonNotYourTurn
	case errors.Is(err, ErrCellOccupied):
		return ReasonAlreadyClaimed
	case errors.Is(err, ErrCellOutOfRange):
		return ReasonOutOfRange
	default:
		return ""
	}
}

// IsInvalidMove - reports whether err is a user-correctable move rejection.
func IsInvalidMove(err error) bool {
	return Reason(err) != ""
}

// IsInvalidConfiguration - reports whether err is a user-correctable session
// creation rejection.
func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, ErrNotEnoughPlayers) ||
		errors.Is(err, ErrTooManyPlayers) ||
		errors.Is(err, ErrDuplicatePlayer) ||
		errors.Is(err, ErrInvalidBoardSize) ||
		errors.Is(err, ErrUnknownPlayer)
}
