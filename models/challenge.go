package models

import "time"

// Challenge is a community challenge users can join. Joining is purely
// informational; challenges never feed the impact calculation.
type Challenge struct {
	ID          string    `bson:"_id" json:"id"`
	Icon        string    `bson:"icon" json:"icon"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Progress    int       `bson:"progress" json:"progress"`
	Goal        string    `bson:"goal" json:"goal"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
