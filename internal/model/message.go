package model

// Message is one agent's contribution to the activity feed. Messages live
// for a single render cycle and are never persisted.
type Message struct {
	Agent   string `json:"agent"`
	Content string `json:"content"`
}
