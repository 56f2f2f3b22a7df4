package file

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Category buckets a stored asset by broad media type.
type Category string

const (
	CategoryImages Category = "images"
	CategoryVideos Category = "videos"
	CategoryAudio  Category = "audio"
	CategoryPDFs   Category = "pdfs"
	CategoryOther  Category = "other"
)

// ParseCategory validates a user-supplied category string.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryImages:
		return CategoryImages, true
	case CategoryVideos:
		return CategoryVideos, true
	case CategoryAudio:
		return CategoryAudio, true
	case CategoryPDFs:
		return CategoryPDFs, true
	case CategoryOther:
		return CategoryOther, true
	}
	return "", false
}

// CategoryForMime infers a category from a MIME type. Unknown or empty
// types map to CategoryOther.
func CategoryForMime(mimeType string) Category {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return CategoryImages
	case strings.HasPrefix(mimeType, "video/"):
		return CategoryVideos
	case strings.HasPrefix(mimeType, "audio/"):
		return CategoryAudio
	case mimeType == "application/pdf":
		return CategoryPDFs
	}
	return CategoryOther
}

// File is a stored asset record. URL and UploadedAt are immutable after
// creation; only OriginalName and Description may be patched.
type File struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OriginalName string        `bson:"original_name" json:"original_name"`
	StoredName   string        `bson:"stored_name,omitempty" json:"stored_name,omitempty"`
	URL          string        `bson:"url" json:"url"`
	Category     Category      `bson:"category" json:"category"`
	MimeType     string        `bson:"mime_type" json:"mime_type"`
	SizeBytes    int64         `bson:"size_bytes" json:"size_bytes"`
	BlobKey      string        `bson:"blob_key,omitempty" json:"blob_key,omitempty"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	UploadedAt   time.Time     `bson:"uploaded_at" json:"uploaded_at"`
}

// MetaPatch carries the only two fields a PATCH may change. Nil means
// "leave as is".
type MetaPatch struct {
	OriginalName *string
	Description  *string
}
