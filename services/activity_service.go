package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecostep/db"
	"ecostep/gamify"
	"ecostep/impact"
	"ecostep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrProfileNotFound        = errors.New("user profile not found")
	ErrUnknownTransportMode   = errors.New("unknown transport mode")
	ErrFuelEfficiencyRequired = errors.New("car and motorbike logs require a positive fuel efficiency")
	ErrNegativeValue          = errors.New("value must not be negative")
)

// ValidateActivity rejects out-of-contract activity input before it reaches
// the calculator. The calculator itself never errors; a motorized log with a
// missing fuel efficiency would silently compute zero transport impact, so
// it has to be refused here.
func ValidateActivity(a impact.Activity) error {
	if !a.TransportMode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTransportMode, a.TransportMode)
	}
	if a.TransportMode.Motorized() && a.FuelEfficiency <= 0 {
		return ErrFuelEfficiencyRequired
	}
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"distance", a.Distance},
		{"energy", a.Energy},
		{"waste", a.Waste},
		{"water", a.Water},
		{"food", a.Food},
	} {
		if field.value < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeValue, field.name)
		}
	}
	return nil
}

// LogOutcome reports what one activity log changed.
type LogOutcome struct {
	Previous gamify.State
	Updated  gamify.State
	Entry    models.ActivityLog
}

// LeveledUp reports whether this log pushed the user over a level boundary.
func (o LogOutcome) LeveledUp() bool {
	return o.Updated.Level > o.Previous.Level
}

// StreakExtended reports whether the daily streak grew.
func (o LogOutcome) StreakExtended() bool {
	return o.Updated.DailyStreak > o.Previous.DailyStreak
}

// LogActivity appends one activity document and applies the gamification
// update in a single transaction: a reader can never observe the activity
// without the matching XP/streak change, or the other way around.
func LogActivity(ctx context.Context, email string, activity impact.Activity, now time.Time) (*LogOutcome, error) {
	if err := ValidateActivity(activity); err != nil {
		return nil, err
	}

	today := gamify.StartOfDay(now)

	result, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var user models.User
		err := db.GetCollection("users").FindOne(sc, bson.M{"email": email}).Decode(&user)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrProfileNotFound
			}
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}

		next := gamify.Apply(user.State, today)

		logEntry := models.ActivityLog{
			UserID:   user.ID,
			Activity: activity,
			Date:     today,
		}
		insertRes, err := db.GetCollection("activities").InsertOne(sc, logEntry)
		if err != nil {
			return nil, fmt.Errorf("failed to insert activity: %w", err)
		}
		if oid, ok := insertRes.InsertedID.(primitive.ObjectID); ok {
			logEntry.ID = oid
		}

		update := bson.M{"$set": bson.M{
			"level":            next.Level,
			"xp":               next.XP,
			"dailyStreak":      next.DailyStreak,
			"lastActivityDate": next.LastActivityDate,
			"updatedAt":        time.Now(),
		}}
		if _, err := db.GetCollection("users").UpdateOne(sc, bson.M{"_id": user.ID}, update); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}

		return LogOutcome{Previous: user.State, Updated: next, Entry: logEntry}, nil
	})
	if err != nil {
		return nil, err
	}

	outcome := result.(LogOutcome)
	return &outcome, nil
}

// ListActivities returns a user's full activity history, oldest first. An
// empty history is the defined zero state, not an error.
func ListActivities(ctx context.Context, userID primitive.ObjectID) ([]models.ActivityLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := db.GetCollection("activities").Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer cursor.Close(ctx)

	activities := []models.ActivityLog{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}
