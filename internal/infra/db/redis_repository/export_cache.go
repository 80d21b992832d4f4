package redis_repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportCacheRepository keeps generated spreadsheet exports for a short
// while so repeated downloads of the same day's data skip the rebuild.
type ExportCacheRepository struct {
	Client *redis.Client
}

func NewExportCacheRepository(client *redis.Client) *ExportCacheRepository {
	return &ExportCacheRepository{Client: client}
}

func exportKey(userId primitive.ObjectID, format string, day string) string {
	return fmt.Sprintf("export:%s:%s:%s", userId.Hex(), format, day)
}

func (r *ExportCacheRepository) SaveXLSX(userId primitive.ObjectID, day string, file *excelize.File, expiration time.Duration) error {
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return r.Client.Set(ctx, exportKey(userId, "xlsx", day), buf.Bytes(), expiration).Err()
}

func (r *ExportCacheRepository) FindXLSX(userId primitive.ObjectID, day string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	raw, err := r.Client.Get(ctx, exportKey(userId, "xlsx", day)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	return raw, nil
}
