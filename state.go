package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// UIState persists the bits of interface state that survive a restart,
// next to the store file. Losing it is harmless.
type UIState struct {
	LastPage int `json:"last_page"`

	path string
}

func LoadUIState(storePath string) *UIState {
	s := &UIState{path: filepath.Join(filepath.Dir(storePath), "state.json")}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, s); err != nil {
		log.Printf("ignoring unreadable ui state: %v", err)
	}
	return s
}

func (s *UIState) Save() {
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("failed to encode ui state: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("failed to save ui state: %v", err)
	}
}
