package domain

import "time"

type Message struct {
	ID          int32     `json:"id"`
	ThreadID    string    `json:"thread_id"`
	SenderID    int32     `json:"sender_id"`
	RecipientID int32     `json:"recipient_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	CreatedOn   time.Time `json:"created_on"`
}
