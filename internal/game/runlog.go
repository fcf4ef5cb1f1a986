package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"grid-roguelike/internal/world"
)

// RunLog records statistics gathered during one session on one level.
type RunLog struct {
	Level       string
	Seed        int64
	TurnsPlayed int
	Shots       int
	Hits        int
	Misses      int
	Blocked     int
}

// tally counts one drained effect tag.
func (r *RunLog) tally(effect string) {
	switch effect {
	case world.EffectShot:
		r.Shots++
	case world.EffectHit:
		r.Hits++
	case world.EffectMiss:
		r.Misses++
	case world.EffectBlocked:
		r.Blocked++
	}
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
func saveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/grid-roguelike,
// defaulting to ~/.local/share/grid-roguelike.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "grid-roguelike"), nil
}
