package utils

import (
	"context"
	"log"
	"time"

	"ecostep/db"
	"ecostep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeedChallenges upserts the community challenge catalogue so a fresh
// database starts with joinable challenges.
func SeedChallenges() {
	challenges := []models.Challenge{
		{
			ID:          "energy-saver-week",
			Icon:        "zap",
			Title:       "Energy Saver Week",
			Description: "Reduce your monthly energy consumption by 10% compared to your last log.",
			Progress:    65,
			Goal:        "10,000 kWh saved",
		},
		{
			ID:          "meat-free-monday",
			Icon:        "vegan",
			Title:       "Meat-Free Monday Challenge",
			Description: "Log a meat-free day next Monday to collectively reduce our food footprint.",
			Progress:    80,
			Goal:        "5,000 participants",
		},
		{
			ID:          "water-wise-month",
			Icon:        "droplets",
			Title:       "Water Wise Month",
			Description: "Aim to keep your daily water usage below 100 liters for a whole month.",
			Progress:    40,
			Goal:        "1M liters saved",
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection("challenges")
	for _, challenge := range challenges {
		update := bson.M{
			"$set": bson.M{
				"icon":        challenge.Icon,
				"title":       challenge.Title,
				"description": challenge.Description,
				"progress":    challenge.Progress,
				"goal":        challenge.Goal,
			},
			"$setOnInsert": bson.M{"createdAt": time.Now()},
		}
		_, err := collection.UpdateOne(ctx, bson.M{"_id": challenge.ID}, update, options.Update().SetUpsert(true))
		if err != nil {
			log.Printf("Failed to seed challenge %s: %v", challenge.ID, err)
		}
	}
	log.Printf("Seeded %d community challenges", len(challenges))
}
