package systems

import "time"

// Message is one line of the on-screen log
type Message struct {
	Text    string
	Expires time.Time
}

// MessageLog stores short-lived HUD messages
type MessageLog struct {
	Messages    []Message
	MaxMessages int
	TTL         time.Duration
	now         func() time.Time
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []Message{},
		MaxMessages: 5,
		TTL:         3 * time.Second,
		now:         time.Now,
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(text string) {
	ml.Messages = append(ml.Messages, Message{Text: text, Expires: ml.now().Add(ml.TTL)})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// Prune drops expired messages
func (ml *MessageLog) Prune() {
	now := ml.now()
	kept := ml.Messages[:0]
	for _, m := range ml.Messages {
		if now.Before(m.Expires) {
			kept = append(kept, m)
		}
	}
	ml.Messages = kept
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i].Text
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []Message{}
}
