package models

import "strings"

// Asset holds the raw bytes of a generated image or video
type Asset struct {
	// MIME type as reported by the API ("image/png", "video/mp4", ...)
	MIMEType string
	// Raw asset bytes
	Data []byte
}

// IsVideo returns true for video assets
func (a *Asset) IsVideo() bool {
	return strings.HasPrefix(a.MIMEType, "video/")
}

// Ext returns a file extension for the asset's MIME type
func (a *Asset) Ext() string {
	switch a.MIMEType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	}
	if a.IsVideo() {
		return ".mp4"
	}
	return ".png"
}
