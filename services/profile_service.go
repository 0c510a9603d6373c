package services

import (
	"context"
	"fmt"
	"time"

	"ecostep/db"
	"ecostep/gamify"
	"ecostep/models"
	"ecostep/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProfileByEmail loads a user profile, returning ErrProfileNotFound when
// the account has no document yet.
func GetProfileByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := db.GetCollection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &user, nil
}

// EnsureProfile creates the default zero-state profile for a new account if
// one does not exist yet. Safe to call on every login.
func EnsureProfile(ctx context.Context, email string) (*models.User, error) {
	state := gamify.NewState()
	now := time.Now()
	update := bson.M{
		"$setOnInsert": bson.M{
			"email":               email,
			"displayName":         utils.ExtractNameFromEmail(email),
			"level":               state.Level,
			"xp":                  state.XP,
			"dailyStreak":         state.DailyStreak,
			"joinedChallenges":    []string{},
			"avatarId":            "sprout",
			"onboardingCompleted": false,
			"createdAt":           now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var user models.User
	err := db.GetCollection("users").FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}
	return &user, nil
}

// ProfileUpdate carries the descriptive fields a user may edit. Gamification
// state is deliberately absent; it only changes through LogActivity.
type ProfileUpdate struct {
	DisplayName string `json:"displayName"`
	Country     string `json:"country"`
	Currency    string `json:"currency"`
	Gender      string `json:"gender"`
	BirthYear   int    `json:"birthYear"`
	AvatarID    string `json:"avatarId"`
}

// UpdateProfile applies descriptive field edits.
func UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) error {
	set := bson.M{"updatedAt": time.Now()}
	if upd.DisplayName != "" {
		set["displayName"] = upd.DisplayName
	}
	if upd.Country != "" {
		set["country"] = upd.Country
	}
	if upd.Currency != "" {
		set["currency"] = upd.Currency
	}
	if upd.Gender != "" {
		set["gender"] = upd.Gender
	}
	if upd.BirthYear != 0 {
		set["birthYear"] = upd.BirthYear
	}
	if upd.AvatarID != "" {
		set["avatarId"] = upd.AvatarID
	}

	res, err := db.GetCollection("users").UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// CompleteOnboarding records the questionnaire outcome on the profile.
func CompleteOnboarding(ctx context.Context, email string, baselineCO2 float64, country string) error {
	set := bson.M{
		"onboardingCompleted": true,
		"baselineCo2":         baselineCO2,
		"updatedAt":           time.Now(),
	}
	if country != "" {
		set["country"] = country
	}
	res, err := db.GetCollection("users").UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to complete onboarding: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// JoinChallenge adds a challenge to the user's joined set. $addToSet keeps
// the operation idempotent for double clicks.
func JoinChallenge(ctx context.Context, email, challengeID string) error {
	count, err := db.GetCollection("challenges").CountDocuments(ctx, bson.M{"_id": challengeID})
	if err != nil {
		return fmt.Errorf("failed to look up challenge: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("challenge %q does not exist", challengeID)
	}

	res, err := db.GetCollection("users").UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$addToSet": bson.M{"joinedChallenges": challengeID}},
	)
	if err != nil {
		return fmt.Errorf("failed to join challenge: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// DeleteAccount removes the profile and its entire activity history in one
// transaction, the only path that ever deletes activity documents.
func DeleteAccount(ctx context.Context, email string) error {
	_, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var user models.User
		err := db.GetCollection("users").FindOne(sc, bson.M{"email": email}).Decode(&user)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrProfileNotFound
			}
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}

		if _, err := db.GetCollection("activities").DeleteMany(sc, bson.M{"userId": user.ID}); err != nil {
			return nil, fmt.Errorf("failed to delete activities: %w", err)
		}
		if _, err := db.GetCollection("feedback").DeleteMany(sc, bson.M{"email": email}); err != nil {
			return nil, fmt.Errorf("failed to delete feedback: %w", err)
		}
		if _, err := db.GetCollection("users").DeleteOne(sc, bson.M{"_id": user.ID}); err != nil {
			return nil, fmt.Errorf("failed to delete profile: %w", err)
		}
		return nil, nil
	})
	return err
}
