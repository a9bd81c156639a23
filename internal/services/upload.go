package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/models"
)

// UploadLogWriter appends entries to the upload-history table.
type UploadLogWriter interface {
	Add(ctx context.Context, entry models.UploadEntry) error
}

// UploadLogReader lists the upload-history table.
type UploadLogReader interface {
	List(ctx context.Context) ([]models.UploadEntry, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// UploadLogService records who uploaded what, when. Recording is
// best-effort on both sinks: a store or broker failure is logged as a
// warning and never blocks the upload itself.
type UploadLogService struct {
	writer      UploadLogWriter
	reader      UploadLogReader
	kafkaWriter KafkaWriter
}

// NewUploadLogService creates a new UploadLogService. kafkaWriter may be nil;
// publishing is then skipped.
func NewUploadLogService(writer UploadLogWriter, reader UploadLogReader, kafkaWriter KafkaWriter) *UploadLogService {
	return &UploadLogService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Record appends a timestamped audit entry and publishes the matching event.
func (s *UploadLogService) Record(ctx context.Context, username, filename string) {
	entry := models.UploadEntry{
		Username:  username,
		Filename:  filename,
		Timestamp: time.Now(),
	}

	if err := s.writer.Add(ctx, entry); err != nil {
		logger.Log.Warnw("failed to record upload, proceeding anyway",
			"username", username, "filename", filename, "error", err)
	}

	s.publishEvent(ctx, entry)
}

// List returns the audit trail, oldest first.
func (s *UploadLogService) List(ctx context.Context) ([]models.UploadEntry, error) {
	return s.reader.List(ctx)
}

// publishEvent publishes an upload event to Kafka.
func (s *UploadLogService) publishEvent(ctx context.Context, entry models.UploadEntry) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.UploadEvent{
		EventID:   uuid.New().String(),
		Username:  entry.Username,
		Filename:  entry.Filename,
		Timestamp: entry.Timestamp.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal upload event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish upload event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Upload event published", "event_id", event.EventID, "username", event.Username)
	}
}
