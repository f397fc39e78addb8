package services

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fastygo/portfolio/internal/infrastructure/buffer"
	"github.com/fastygo/portfolio/usecase"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
}

// Replayer saves a buffered record again.
type Replayer interface {
	Replay(ctx context.Context, entity string, payload []byte) error
}

// ProcessorConfig controls how buffered writes are drained.
type ProcessorConfig struct {
	BatchSize  int
	MaxRetries int
}

// BufferProcessor parks failed portfolio writes in the bolt store and
// replays them once the store is reachable again.
type BufferProcessor struct {
	store    *buffer.Store
	monitor  ConnectionHealth
	replayer Replayer
	logger   *zap.Logger
	cfg      ProcessorConfig
}

var _ usecase.RetryBuffer = (*BufferProcessor)(nil)

func NewBufferProcessor(
	store *buffer.Store,
	monitor ConnectionHealth,
	replayer Replayer,
	logger *zap.Logger,
	cfg ProcessorConfig,
) *BufferProcessor {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BufferProcessor{
		store:    store,
		monitor:  monitor,
		replayer: replayer,
		logger:   logger,
		cfg:      cfg,
	}
}

// Enqueue stores payload for a later replay.
func (bp *BufferProcessor) Enqueue(ctx context.Context, entity string, payload any) error {
	if bp == nil || bp.store == nil {
		return errors.New("buffer processor not configured")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode buffered write")
	}
	if err := bp.store.Enqueue(buffer.Item{Entity: entity, Data: data}); err != nil {
		return errors.Wrap(err, "buffer write")
	}
	bp.logger.Info("write buffered for retry", zap.String("entity", entity))
	return nil
}

// Drain replays one batch. It does nothing while the monitor reports the
// store offline. Items that keep failing are dropped after MaxRetries.
func (bp *BufferProcessor) Drain(ctx context.Context) error {
	if bp == nil || bp.store == nil {
		return nil
	}
	if bp.monitor != nil && !bp.monitor.IsOnline() {
		bp.logger.Debug("skipping buffer drain (offline)")
		return nil
	}

	items, err := bp.store.GetBatch(bp.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := bp.replayer.Replay(ctx, item.Entity, item.Data); err != nil {
			bp.retry(item, err)
			continue
		}
		if err := bp.store.Remove(item); err != nil {
			bp.logger.Warn("failed to purge replayed buffer item", zap.Error(err))
		}
		bp.logger.Info("buffered write replayed", zap.String("item_id", item.ID), zap.String("entity", item.Entity))
	}
	return nil
}

func (bp *BufferProcessor) retry(item buffer.Item, cause error) {
	bp.logger.Error("failed to replay buffer item",
		zap.String("item_id", item.ID),
		zap.String("entity", item.Entity),
		zap.Error(cause))

	item.Retries++
	item.LastError = cause.Error()
	if item.Retries >= bp.cfg.MaxRetries {
		bp.logger.Warn("dropping buffer item (max retries reached)",
			zap.String("item_id", item.ID),
			zap.String("entity", item.Entity),
			zap.ByteString("data", item.Data))
		if err := bp.store.Remove(item); err != nil {
			bp.logger.Warn("failed to remove buffer item", zap.Error(err))
		}
		return
	}
	if err := bp.store.Requeue(item); err != nil {
		bp.logger.Error("failed to requeue buffer item", zap.Error(err))
	}
}

// Size returns the number of buffered items.
func (bp *BufferProcessor) Size() int {
	if bp == nil || bp.store == nil {
		return 0
	}
	size, err := bp.store.Size()
	if err != nil {
		return 0
	}
	return size
}
