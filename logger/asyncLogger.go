package logger

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	"marhaba/models/booking"
	log_model "marhaba/models/log"
	"marhaba/store"
	"marhaba/types"
)

// Sink persists journal entries
type Sink interface {
	Write(entry types.ActionEntry) error
}

// GormSink writes entries to the action_logs table, plus a
// booking_status_events row when a booking status was set
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Write(entry types.ActionEntry) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		row := log_model.ActionLog{
			Sequence:  entry.Sequence,
			Action:    entry.Action,
			Payload:   entry.Payload,
			Outcome:   entry.Outcome,
			CreatedAt: entry.CreatedAt,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if entry.BookingID == "" {
			return nil
		}
		event := booking.BookingStatusEvent{
			BookingID: entry.BookingID,
			Status:    booking.BookingStatus(entry.Status),
			CreatedAt: entry.CreatedAt,
		}
		return tx.Create(&event).Error
	})
}

// LogSink writes entries to the application log, used when no database is
// configured
type LogSink struct{}

func (LogSink) Write(entry types.ActionEntry) error {
	line := fmt.Sprintf("journal #%d %s %s", entry.Sequence, entry.Action, entry.Outcome)
	if entry.BookingID != "" {
		line += fmt.Sprintf(" booking=%s status=%s", entry.BookingID, entry.Status)
	}
	Debug(line)
	return nil
}

// AsyncLogger journals store actions off the dispatch path. Entries are
// buffered on a channel and written by ProcessLog.
type AsyncLogger struct {
	sink    Sink
	channel chan types.ActionEntry
	done    chan struct{}
	seq     atomic.Uint64
}

func NewAsyncLogger(sink Sink) *AsyncLogger {
	return &AsyncLogger{
		sink:    sink,
		channel: make(chan types.ActionEntry, 100),
		done:    make(chan struct{}),
	}
}

// ProcessLog drains the channel until Close is called
func (logger *AsyncLogger) ProcessLog() {
	defer close(logger.done)
	Info("Starting action journal...")

	for entry := range logger.channel {
		if err := logger.sink.Write(entry); err != nil {
			Error("Failed to write journal entry "+entry.Action, err)
		}
	}
}

// Log pushes an entry into the channel
func (logger *AsyncLogger) Log(entry types.ActionEntry) {
	logger.channel <- entry
}

// Listener returns a store listener that journals every dispatched action
// with its outcome
func (logger *AsyncLogger) Listener() store.Listener {
	return func(action store.Action, outcome store.Outcome, _ store.AppState) {
		logger.Log(logger.entryFor(action, outcome))
	}
}

// Close stops accepting entries and waits for the buffered ones to be written
func (logger *AsyncLogger) Close() {
	close(logger.channel)
	<-logger.done
}

func (logger *AsyncLogger) entryFor(action store.Action, outcome store.Outcome) types.ActionEntry {
	entry := types.ActionEntry{
		Sequence:  logger.seq.Add(1),
		Action:    string(action.Type()),
		Outcome:   string(outcome),
		CreatedAt: time.Now(),
	}
	if payload, err := json.Marshal(action); err == nil {
		entry.Payload = string(payload)
	} else {
		Error("Failed to encode action payload", err)
	}

	if outcome != store.Applied {
		return entry
	}
	switch a := action.(type) {
	case store.AddBooking:
		entry.BookingID = a.Booking.ID
		entry.Status = string(booking.BookingStatusPending)
	case store.UpdateBookingStatus:
		entry.BookingID = a.BookingID
		entry.Status = string(a.Status)
	}
	return entry
}
