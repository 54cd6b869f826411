package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"avery/internal/config"
	"avery/internal/constants"
	"avery/internal/logger"
	"avery/pkg/metrics"
	"avery/pkg/models"
)

// Repository is the append-only record store. Append serializes the whole
// read-append-write cycle per collection, so concurrent callers never lose
// each other's records.
type Repository interface {
	Append(ctx context.Context, collection string, rec models.Record) error
	List(ctx context.Context, collection string) ([]models.Record, error)
}

type FileStore struct {
	log         logger.Logger
	collections map[string]*collection
}

type collection struct {
	name string
	path string
	mu   sync.Mutex
}

func NewFileStore(cfg config.StorageConfig, log logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.DataDir, err)
	}

	s := &FileStore{
		log: log,
		collections: map[string]*collection{
			constants.CollectionMessages: {
				name: constants.CollectionMessages,
				path: filepath.Join(cfg.DataDir, cfg.MessagesFile),
			},
			constants.CollectionOrders: {
				name: constants.CollectionOrders,
				path: filepath.Join(cfg.DataDir, cfg.OrdersFile),
			},
		},
	}

	for _, c := range s.collections {
		if err := initFile(c.path); err != nil {
			return nil, fmt.Errorf("failed to initialize collection %s: %w", c.name, err)
		}
	}

	return s, nil
}

// initFile creates an empty JSON array if the collection file is absent.
func initFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte("[]"), 0o644)
}

func (s *FileStore) Append(ctx context.Context, name string, rec models.Record) error {
	c, ok := s.collections[name]
	if !ok {
		return fmt.Errorf("unknown collection: %s", name)
	}

	start := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	records, err := s.load(ctx, c)
	if err != nil {
		metrics.StoreAppendsTotal.WithLabelValues(c.name, "error").Inc()
		return err
	}

	records = append(records, rec)

	if err := writeSnapshot(c.path, records); err != nil {
		metrics.StoreAppendsTotal.WithLabelValues(c.name, "error").Inc()
		return fmt.Errorf("failed to write collection %s: %w", c.name, err)
	}

	metrics.StoreAppendsTotal.WithLabelValues(c.name, "ok").Inc()
	metrics.StoreAppendDuration.WithLabelValues(c.name).Observe(float64(time.Since(start).Milliseconds()))
	return nil
}

func (s *FileStore) List(ctx context.Context, name string) ([]models.Record, error) {
	c, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("unknown collection: %s", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return s.load(ctx, c)
}

// load reads the full collection. A corrupt file is recoverable: it is logged,
// counted, and treated as empty so the next append rewrites it.
func (s *FileStore) load(ctx context.Context, c *collection) ([]models.Record, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", c.name, err)
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.WarnwCtx(ctx, "Corrupt collection file, resetting to empty",
			"collection", c.name, "path", c.path, "error", err)
		metrics.CorruptCollectionsTotal.WithLabelValues(c.name).Inc()
		return []models.Record{}, nil
	}

	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

// writeSnapshot writes the full sequence through a temp file and rename, so a
// crash mid-write never leaves a half-written collection behind.
func writeSnapshot(path string, records []models.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Ping reports whether every collection file is still reachable.
func (s *FileStore) Ping(ctx context.Context) error {
	for _, c := range s.collections {
		info, err := os.Stat(c.path)
		if err != nil {
			return fmt.Errorf("collection %s unreachable: %w", c.name, err)
		}
		if info.IsDir() {
			return fmt.Errorf("collection %s path is a directory", c.name)
		}
	}
	return nil
}
