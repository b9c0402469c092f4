package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

// ValkeyClient tracks which review batches have already been analyzed so a
// redelivered Kafka message does not trigger a second pipeline run.
type ValkeyClient struct {
	Client valkey.Client
}

const (
	valkeyProcessedKey = "reviews:processed_batches"
	valkeyProcessedTTL = 86400 // seconds
	valkeyRetries      = 3
)

func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		opts := valkey.ClientOption{
			InitAddress:      []string{os.Getenv("VALKEY_INIT_ADDRESS")},
			Password:         os.Getenv("VALKEY_PASSWORD"),
			ConnWriteTimeout: 5 * time.Second,
			SelectDB:         0,
		}
		if os.Getenv("VALKEY_TLS") == "true" {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
		}

		client, err := valkey.NewClient(opts)
		if err != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", res.Error()))
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")
		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

func GetValkeyClient() *ValkeyClient {
	if valkeyInstance == nil {
		panic("[ValkeyClient] Error: Valkey client is not initialized")
	}
	return valkeyInstance
}

// MarkBatchProcessed records a batch ID with a day of retention.
func (vc *ValkeyClient) MarkBatchProcessed(ctx context.Context, batchID string) error {
	commands := []valkey.Completed{
		vc.Client.B().Sadd().Key(valkeyProcessedKey).Member(batchID).Build(),
		vc.Client.B().Expire().Key(valkeyProcessedKey).Seconds(valkeyProcessedTTL).Build(),
	}

	for _, res := range vc.Client.DoMulti(ctx, commands...) {
		if err := res.Error(); err != nil {
			return err
		}
	}

	slog.Info("[ValkeyClient] Marked batch as processed",
		slog.String("batch_id", batchID))
	return nil
}

// IsBatchProcessed reports whether a batch ID has been seen, retrying on
// transient failures and failing open so a Valkey outage never stalls the
// worker.
func (vc *ValkeyClient) IsBatchProcessed(ctx context.Context, batchID string) bool {
	var lastErr error
	for i := 0; i < valkeyRetries; i++ {
		res := vc.Client.Do(ctx, vc.Client.B().Sismember().Key(valkeyProcessedKey).Member(batchID).Build())
		if err := res.Error(); err != nil {
			lastErr = err
			time.Sleep(time.Second)
			continue
		}
		member, err := res.AsBool()
		if err != nil {
			lastErr = err
			break
		}
		return member
	}

	slog.Warn("[ValkeyClient] Failed to check processed set, treating batch as new",
		slog.String("batch_id", batchID),
		slog.String("error", lastErr.Error()))
	return false
}
