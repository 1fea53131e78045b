package events

import (
	"log/slog"
	"time"
)

// PublishWithRetry attempts to hand an event to a sink with retry logic.
// It makes up to maxRetries attempts with exponential backoff.
// Returns the error from the final attempt if all retries fail.
//
// Sinks are non-critical consumers (activity log, relays): a failure here
// never undoes the mutation that produced the event.
func PublishWithRetry(sink Sink, event Event, maxRetries int) error {
	if sink == nil {
		return nil // No sink configured
	}

	var lastErr error
	baseDelay := 50 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := sink.SendEvent(event)
		if err == nil {
			if attempt > 0 {
				slog.Debug("event published after retry",
					"attempt", attempt+1,
					"event_type", event.Type,
					"entity", event.Entity,
					"entity_id", event.EntityID)
			}
			return nil
		}

		lastErr = err

		// Don't sleep after the last attempt
		if attempt < maxRetries-1 {
			// Exponential backoff: 50ms, 100ms, 200ms
			delay := baseDelay * (1 << attempt)
			slog.Debug("event publish failed, retrying",
				"attempt", attempt+1,
				"max_retries", maxRetries,
				"retry_delay", delay,
				"error", err)
			time.Sleep(delay)
		}
	}

	slog.Warn("event publish failed after all retries",
		"attempts", maxRetries,
		"event_type", event.Type,
		"entity", event.Entity,
		"entity_id", event.EntityID,
		"error", lastErr)

	return lastErr
}
