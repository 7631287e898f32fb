package domain

import "time"

// TimestampLayout is the wire format for message timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Category identifies which analysis pipeline a monitored channel feeds.
type Category string

const (
	CategoryPumpDump Category = "pump_and_dump"
	CategoryNews     Category = "news"
)

// Message is a normalized Telegram message as captured by the ingestion
// handler. Immutable once created; queues and snapshots only copy it.
type Message struct {
	GroupID   int64  `json:"group_id"`
	GroupName string `json:"group_name"`
	MessageID int    `json:"message_id"`
	Sender    int64  `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// NewMessage builds a Message with the timestamp formatted for the wire.
func NewMessage(groupID int64, groupName string, messageID int, sender int64, text string, at time.Time) Message {
	return Message{
		GroupID:   groupID,
		GroupName: groupName,
		MessageID: messageID,
		Sender:    sender,
		Text:      text,
		Timestamp: at.Local().Format(TimestampLayout),
	}
}
