package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeSnapshotUpdate is for messages that carry a recomputed
	// petty-cash snapshot for a company.
	MessageTypeSnapshotUpdate MessageType = "snapshotUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}
