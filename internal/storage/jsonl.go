package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"farmscope/internal/model"
)

// JsonlSink writes pool records and ticks to JSONL files next to each other,
// one line per record.
type JsonlSink struct {
	poolsPath string
	ticksPath string
	mu        sync.Mutex
}

func NewJsonlSink(dir string) *JsonlSink {
	return &JsonlSink{
		poolsPath: filepath.Join(dir, "pools.jsonl"),
		ticksPath: filepath.Join(dir, "ticks.jsonl"),
	}
}

// UpsertPools appends pool descriptors as JSON lines. The JSONL sink keeps
// history rather than deduplicating; readers take the last line per pool id.
func (s *JsonlSink) UpsertPools(_ context.Context, pools []model.PoolRecord) error {
	return appendLines(&s.mu, s.poolsPath, pools)
}

// InsertPerformanceTicks appends ticks as JSON lines.
func (s *JsonlSink) InsertPerformanceTicks(_ context.Context, ticks []model.PerformanceTick) error {
	return appendLines(&s.mu, s.ticksPath, ticks)
}

func appendLines[T any](mu *sync.Mutex, path string, records []T) error {
	if len(records) == 0 {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	mu.Lock()
	defer mu.Unlock()

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
