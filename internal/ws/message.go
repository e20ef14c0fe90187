package ws

import "time"

// MessageType discriminates WebSocket messages.
type MessageType string

const (
	MessageThemeChanged     MessageType = "theme.changed"
	MessagePresetRegistered MessageType = "preset.registered"
	MessagePackChanged      MessageType = "pack.changed"
)

// Message is the envelope for all WebSocket messages. Data carries the
// event payload verbatim (preset name, mode, pack, and so on).
type Message struct {
	Type      MessageType    `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}
