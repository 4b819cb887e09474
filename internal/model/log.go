package model

import "time"

// LogType classifies battle-log entries.
type LogType string

const (
	LogSystem   LogType = "SYSTEM"
	LogPlayer   LogType = "PLAYER"
	LogEnemy    LogType = "ENEMY"
	LogAnalysis LogType = "ANALYSIS"
)

// LogEntry is one line of the battle log.
type LogEntry struct {
	ID        string    `json:"id"`
	Type      LogType   `json:"type"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
