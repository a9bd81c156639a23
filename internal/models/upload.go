package models

import "time"

// UploadTimeLayout is the timestamp format stored in the upload-history table.
const UploadTimeLayout = "2006-01-02 15:04:05"

// UploadEntry represents one row of the upload-history table.
type UploadEntry struct {
	Username  string    `json:"username"`  // Who uploaded
	Filename  string    `json:"filename"`  // Name of the uploaded file
	Timestamp time.Time `json:"timestamp"` // When the upload happened
}

// UploadEvent is the message published to the audit topic for each upload.
type UploadEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Username  string `json:"username"`  // Who uploaded
	Filename  string `json:"filename"`  // Name of the uploaded file
	Timestamp int64  `json:"timestamp"` // Unix timestamp (in seconds) of the upload
}
