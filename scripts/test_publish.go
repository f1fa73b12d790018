// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type SceneUploadEvent struct {
	Location    string    `json:"location"`
	Sublocation string    `json:"sublocation,omitempty"`
	Path        string    `json:"path"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	location := flag.String("location", "New Delhi", "Location name for the test event")
	sublocation := flag.String("sublocation", "North", "Sub-area name for the test event")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := SceneUploadEvent{
		Location:    *location,
		Sublocation: *sublocation,
		Path:        "new-delhi/north/test-scene.png",
		UploadedAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "scene:uploads",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published successfully!\n")
	fmt.Printf("   Stream: scene:uploads\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Location: %s / %s\n", event.Location, event.Sublocation)
	fmt.Printf("\nThe registry worker should log an invalidation for %q.\n", event.Location)
}
