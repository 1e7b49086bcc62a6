package domain

import "time"

// File is the metadata record for an uploaded file. The bytes live in the
// backend's storage; the client only holds them transiently during upload.
type File struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Category  string    `json:"category,omitempty"`
	MIMEType  string    `json:"mimeType,omitempty"`
	Size      int64     `json:"size,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// SignedURL is a time-limited backend-issued download link for a file.
type SignedURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

// Resume is the metadata record for an uploaded resume document.
type Resume struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
