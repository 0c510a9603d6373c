package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecostep/impact"
)

// ActivityLog is one stored activity document. The habit fields live in the
// embedded impact.Activity; Date is normalized to start-of-day at write time
// and is never user-editable. Documents are append-only: nothing updates or
// deletes them short of account deletion.
type ActivityLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	impact.Activity `bson:",inline"`
	Date            time.Time `bson:"date" json:"date"`
}
