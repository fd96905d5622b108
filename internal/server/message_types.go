package server

// MessageType represents a WebSocket message type with type safety
type MessageType string

// WebSocket message type constants
const (
	// Client to server messages
	MessageTypeEvaluate MessageType = "evaluate"
	MessageTypeParse    MessageType = "parse"
	MessageTypeClassify MessageType = "classify"

	// Server to client messages
	MessageTypeResult     MessageType = "result"
	MessageTypeParsed     MessageType = "parsed"
	MessageTypeClassified MessageType = "classified"
	MessageTypeError      MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}

// Error codes sent in ErrorData.Code
const (
	ErrCodeInvalidMessage = "invalid_message"
	ErrCodeUnknownType    = "unknown_type"
	ErrCodeInvalidCard    = "invalid_card"
	ErrCodeInvalidSuits   = "invalid_suits"
	ErrCodeInvalidHand    = "invalid_hand"
	ErrCodeInternal       = "internal"
)
