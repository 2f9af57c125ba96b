package whatsapp

import "time"

// Message is one simulated WhatsApp interaction. Immutable once stored.
type Message struct {
	ID         string    `json:"id"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	IsIncoming bool      `json:"is_incoming"`
	Response   *string   `json:"response,omitempty"`
	Command    *string   `json:"command,omitempty"`
	Processed  bool      `json:"processed"`
	CreatedAt  time.Time `json:"created_at"`
}
