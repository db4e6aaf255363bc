package entity

import "time"

// HighScore - immutable record of a won game: who won, when, how long the game
// took and how many moves the winner needed. Created exactly once per win,
// never on a tie.
type HighScore struct {
	ID         int64         `json:"id"`
	PlayerID   string        `json:"player_id"`
	Date       time.Time     `json:"date"`
	Duration   time.Duration `json:"duration_time"`
	MovesCount int           `json:"moves_count"`
}
