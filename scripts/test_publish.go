//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/timetable-editor/internal/domain"
)

// Публикует тестовое событие синхронизации, чтобы проверить воркер аудита
// без запуска API.
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	trainID := flag.String("train", "1611M", "Train number to audit")
	action := flag.String("action", string(domain.SyncActionSaved), "saved or deleted")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.TrainSyncedEvent{
		OperationID: uuid.New(),
		TrainID:     *trainID,
		Action:      domain.SyncAction(*action),
		OccurredAt:  time.Now().UTC(),
	}
	if !event.IsValid() {
		log.Fatalf("Invalid event: train=%q action=%q", *trainID, *action)
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamTrainSynced,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamTrainSynced)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Operation ID: %s\n", event.OperationID)
	fmt.Printf("   Train: %s (%s)\n", event.TrainID, event.Action)

	// воркер подтверждает сообщение после проверки
	timeout := time.After(15 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout: message still pending or no consumer group")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, domain.StreamTrainSynced).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Pending == 0 && g.LastDeliveredID >= result {
					fmt.Printf("Audited by group %s\n", g.Name)
					return
				}
			}
		}
	}
}
