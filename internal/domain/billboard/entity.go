package billboard

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Billboard is the singleton announcement message. Create and update are
// merged into a single upsert; deletion clears the whole collection.
type Billboard struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Message   string        `bson:"message" json:"message"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}
