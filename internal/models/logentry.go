package models

// LogType classifies room log entries so clients can style them.
type LogType string

const (
	LogTypeSpin   LogType = "spin"
	LogTypeInfo   LogType = "info"
	LogTypeSkip   LogType = "skip"
	LogTypeWin    LogType = "win"
	LogTypeUnsold LogType = "unsold"
)

// LogEntry is one line of a room's append-only event log.
type LogEntry struct {
	Type LogType `json:"type"`
	Text string  `json:"text"`
}
