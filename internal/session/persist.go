package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chorusfm/chorus/internal/models"
)

// loadUser reads and decodes the persisted identity.
func loadUser(path string) (models.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to decode session file: %w", err)
	}
	if user.ID == "" {
		return models.User{}, fmt.Errorf("session file holds no identity")
	}

	return user, nil
}

// saveUser encodes the identity and writes the session file, creating
// parent directories as needed.
func saveUser(path string, user models.User) error {
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// clearUser deletes the session file. A missing file is not an error.
func clearUser(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
