package devicelog

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Entry is an append-only device visit record. There is no update or
// per-record delete path, only bulk clear.
type Entry struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string        `bson:"name" json:"name"`
	NormalizedName string        `bson:"normalized_name" json:"normalized_name"`
	Timestamp      time.Time     `bson:"timestamp" json:"timestamp"`
	SourceAddress  string        `bson:"source_address" json:"source_address"`
	UserAgent      string        `bson:"user_agent" json:"user_agent"`
}

// Normalize lowercases and trims a device name for grouping.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
