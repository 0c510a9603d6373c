package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecostep/gamify"
)

// User defines a user profile document in the `users` collection. The
// gamification fields are mutated only through the activity-log transaction.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	Country     string             `bson:"country,omitempty" json:"country,omitempty"`
	Currency    string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Gender      string             `bson:"gender,omitempty" json:"gender,omitempty"`
	BirthYear   int                `bson:"birthYear,omitempty" json:"birthYear,omitempty"`
	AvatarID    string             `bson:"avatarId,omitempty" json:"avatarId,omitempty"`

	OnboardingCompleted bool    `bson:"onboardingCompleted" json:"onboardingCompleted"`
	BaselineCO2         float64 `bson:"baselineCo2,omitempty" json:"baselineCo2,omitempty"`

	gamify.State     `bson:",inline"`
	JoinedChallenges []string `bson:"joinedChallenges" json:"joinedChallenges"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
