// Package hud produces the text shown around and over the playfield. Both the
// window and terminal front-ends draw these lines.
package hud

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Sidebar returns the score panel drawn next to the board.
func Sidebar(s *tetris.Session) []string {
	lines := []string{
		"SCORE",
		fmt.Sprintf("%d", s.Score()),
		"",
		"LEVEL",
		fmt.Sprintf("%d", s.Level()),
		"",
		"LINES",
		fmt.Sprintf("%d", s.Lines()),
		"",
		"TIME",
		Clock(s.Elapsed()),
	}
	if best := s.HighScores(); len(best) > 0 {
		lines = append(lines, "", "BEST", fmt.Sprintf("%d", best[0]))
	}
	return lines
}

// Overlay returns the text drawn over the board for the current phase. It is
// empty while playing.
func Overlay(s *tetris.Session) []string {
	switch s.Phase() {
	case tetris.PhaseMenu:
		return []string{
			"BLOCKFALL",
			"",
			"Enter  start",
			"H      high scores",
			"Q      quit",
		}
	case tetris.PhasePaused:
		return []string{
			"PAUSED",
			"",
			"P      resume",
			"Esc    menu",
		}
	case tetris.PhaseGameOver:
		return []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score %d", s.Score()),
			fmt.Sprintf("Lines %d", s.Lines()),
			"",
			"Enter  play again",
			"Esc    menu",
		}
	case tetris.PhaseHighScores:
		return HighScores(s.HighScores())
	}
	return nil
}

// HighScores formats a ranked score table.
func HighScores(scores []int) []string {
	lines := []string{"HIGH SCORES", ""}
	if len(scores) == 0 {
		lines = append(lines, "no scores yet")
	}
	for i, score := range scores {
		lines = append(lines, fmt.Sprintf("%2d. %7d", i+1, score))
	}
	return append(lines, "", "Esc    back")
}

// Clock formats elapsed play time as m:ss.
func Clock(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
