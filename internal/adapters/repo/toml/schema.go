package toml

import "fmt"

const currentSchemaVersion = 1

// Plain arrays come before arrays of tables so the encoded document keeps
// them at the top level.
type fileSchema struct {
	Version    int              `toml:"version"`
	Favourites []string         `toml:"favourites"`
	Recent     []string         `toml:"recent"`
	Contacts   []contactSchema  `toml:"contacts"`
	TalkTime   []talkTimeSchema `toml:"talk_time"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported book schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type contactSchema struct {
	Name  string `toml:"name"`
	Phone string `toml:"phone"`
}

type talkTimeSchema struct {
	Name    string `toml:"name"`
	Seconds int64  `toml:"seconds"`
}
