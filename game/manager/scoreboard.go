package manager

import (
	"sort"
	"sync"
	"time"
)

const maxScores = 50 // Results kept in history

// GameRecord is the outcome of one finished session.
type GameRecord struct {
	SessionID string
	Score     int
	Length    int
	EndTime   time.Time
}

// ScoreBoard keeps finished session results in memory for the lifetime of
// the process. Nothing is written to disk.
type ScoreBoard struct {
	mutex     sync.RWMutex
	highScore int
	games     []GameRecord
	played    int
}

func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{
		games: make([]GameRecord, 0),
	}
}

// AddGame records a finished session.
func (sb *ScoreBoard) AddGame(rec GameRecord) {
	sb.mutex.Lock()
	defer sb.mutex.Unlock()

	if len(sb.games) >= maxScores {
		sb.games = sb.games[1:]
	}
	sb.games = append(sb.games, rec)
	sb.played++
	if rec.Score > sb.highScore {
		sb.highScore = rec.Score
	}
}

func (sb *ScoreBoard) GetHighScore() int {
	sb.mutex.RLock()
	defer sb.mutex.RUnlock()
	return sb.highScore
}

func (sb *ScoreBoard) GetGamesPlayed() int {
	sb.mutex.RLock()
	defer sb.mutex.RUnlock()
	return sb.played
}

// GetAverageScore averages the retained history.
func (sb *ScoreBoard) GetAverageScore() float64 {
	sb.mutex.RLock()
	defer sb.mutex.RUnlock()

	if len(sb.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range sb.games {
		total += g.Score
	}
	return float64(total) / float64(len(sb.games))
}

// GetMedianScore returns the median of the retained history.
func (sb *ScoreBoard) GetMedianScore() float64 {
	sb.mutex.RLock()
	defer sb.mutex.RUnlock()

	if len(sb.games) == 0 {
		return 0
	}
	scores := make([]int, len(sb.games))
	for i, g := range sb.games {
		scores[i] = g.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// GetHistory returns a copy of the retained records, oldest first.
func (sb *ScoreBoard) GetHistory() []GameRecord {
	sb.mutex.RLock()
	defer sb.mutex.RUnlock()

	out := make([]GameRecord, len(sb.games))
	copy(out, sb.games)
	return out
}
