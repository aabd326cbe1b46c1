// Package persist là lớp lưu snapshot key → JSON cho các store in-memory.
// Mỗi store có một namespace cố định; khởi động đọc lại, mỗi lần ghi là
// serialize nguyên store. Không có redis thì service vẫn chạy, chỉ bỏ qua snapshot.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Namespace theo store
const (
	KeyBookingLedger = "cinema:booking:ledger"
	KeySessionPrefix = "cinema:session:" // + sessionId
)

var ErrNotFound = errors.New("snapshot not found")

type Store struct {
	client *redis.Client
}

// Connect mở kết nối redis; lỗi thì trả về store rỗng (chạy thuần in-memory)
func Connect(addr string) *Store {
	if addr == "" {
		log.Println("Không cấu hình REDIS_ADDR, bỏ qua persistence")
		return &Store{}
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Không kết nối được redis (%s), bỏ qua persistence: %v", addr, err)
		return &Store{}
	}

	log.Println("Connection Opened to Redis")
	return &Store{client: client}
}

func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

// Save serialize toàn bộ snapshot và ghi đè key
func (s *Store) Save(ctx context.Context, key string, v any) error {
	if !s.Enabled() {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// Load đọc snapshot vào v; key chưa có trả về ErrNotFound (dùng trạng thái mặc định)
func (s *Store) Load(ctx context.Context, key string, v any) error {
	if !s.Enabled() {
		return ErrNotFound
	}
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Publish đẩy message lên kênh pub/sub (sơ đồ ghế realtime)
func (s *Store) Publish(ctx context.Context, channel string, payload any) error {
	if !s.Enabled() {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.client.Publish(ctx, channel, data).Err()
}

// Subscribe mở subscription pub/sub; nil khi không có redis
func (s *Store) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	if !s.Enabled() {
		return nil
	}
	return s.client.Subscribe(ctx, channel)
}
