package session

import (
	"encoding/json"
	"time"
)

// Session is a signed-in admin.
type Session struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	CSRF      string    `json:"csrf"`
	Flash     *Flash    `json:"flash,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Flash is a message shown once on the next page the admin sees.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// CurrentSerializationVersion is bumped on incompatible format changes.
// Sessions written with another version are treated as missing.
const CurrentSerializationVersion = 1

type envelope struct {
	Version int `json:"version"`
	*Session
}

// Serialize encodes s for a Store.
func Serialize(s *Session) ([]byte, error) {
	return json.Marshal(envelope{Version: CurrentSerializationVersion, Session: s})
}

// Deserialize decodes data written by Serialize. It returns (nil, nil) for
// data from another serialization version.
func Deserialize(data []byte) (*Session, error) {
	env := envelope{Session: &Session{}}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Version != CurrentSerializationVersion {
		return nil, nil
	}
	return env.Session, nil
}
