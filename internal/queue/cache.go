package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hospital_queue/internal/storage"

	"github.com/go-redis/redis/v8"
)

// Снимок очереди живёт в Redis совсем недолго: дашборды опрашивают его
// каждые несколько секунд, и кэш гасит эти повторные чтения.
const snapshotTTL = 5 * time.Second

func snapshotKey(doctorID uint) string {
	return fmt.Sprintf("doctor_queue:%d", doctorID)
}

// CachedActiveQueue возвращает снимок активной очереди врача, сначала из
// Redis, иначе из базы с записью в кэш. Без Redis работает напрямую с базой.
func (s *Service) CachedActiveQueue(ctx context.Context, doctorID uint) ([]ActiveQueueItem, error) {
	if storage.RedisClient != nil {
		raw, err := storage.RedisClient.Get(ctx, snapshotKey(doctorID)).Result()
		if err == nil {
			var items []ActiveQueueItem
			if jsonErr := json.Unmarshal([]byte(raw), &items); jsonErr == nil {
				return items, nil
			}
		} else if err != redis.Nil {
			log.Println("Ошибка чтения снимка очереди из Redis:", err)
		}
	}

	entries, err := s.ListActive(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	items := s.ToItems(entries)

	if storage.RedisClient != nil {
		raw, err := json.Marshal(items)
		if err == nil {
			if err := storage.RedisClient.Set(ctx, snapshotKey(doctorID), raw, snapshotTTL).Err(); err != nil {
				log.Println("Ошибка записи снимка очереди в Redis:", err)
			}
		}
	}
	return items, nil
}

// InvalidateSnapshot сбрасывает кэшированный снимок после мутации очереди.
func InvalidateSnapshot(doctorID uint) {
	if storage.RedisClient == nil {
		return
	}
	if err := storage.RedisClient.Del(context.Background(), snapshotKey(doctorID)).Err(); err != nil {
		log.Println("Ошибка сброса снимка очереди в Redis:", err)
	}
}
