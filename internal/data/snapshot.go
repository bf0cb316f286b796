package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sleeper-luck/internal/model"
)

// LoadSnapshot loads a league snapshot from a JSON file
func LoadSnapshot(filePath string) (*model.LeagueSnapshot, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap model.LeagueSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}
	if snap.LeagueID == "" {
		snap.LeagueID = snap.League.LeagueID
	}

	return &snap, nil
}

// SaveSnapshot writes a league snapshot to a JSON file, creating parent directories.
func SaveSnapshot(snap *model.LeagueSnapshot, filePath string) error {
	if snap == nil {
		return fmt.Errorf("snapshot is nil")
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	return nil
}
