// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reissue

import (
	"log/slog"

	"github.com/reissue/reissue/request"
)

// LogHandler returns an event handler that logs the attempt lifecycle
// of every sequence to l: attempts at debug level, attempt failures at
// warn level, and the terminal outcome at info or error level. Install
// it on the events it should observe, or on all of them:
//
//	handlers := &reissue.HandlerGroup{}
//	h := reissue.LogHandler(logger)
//	for _, evt := range reissue.Events() {
//		handlers.PushBack(evt, h)
//	}
func LogHandler(l *slog.Logger) Handler {
	return HandlerFunc(func(evt Event, e *request.Execution) {
		switch evt {
		case BeforeAttempt:
			l.Debug("attempt starting",
				slog.String("execution", e.ID),
				slog.Int("attempt", e.Attempt),
				slog.String("method", e.Plan.Method),
				slog.String("url", e.Plan.URL.String()))
		case AfterAttempt:
			if e.Err != nil {
				l.Warn("attempt failed",
					slog.String("execution", e.ID),
					slog.Int("attempt", e.Attempt),
					slog.Any("error", e.Err))
			} else {
				l.Debug("attempt completed",
					slog.String("execution", e.ID),
					slog.Int("attempt", e.Attempt),
					slog.Int("status", e.StatusCode()))
			}
		case AfterExecutionEnd:
			if e.Err != nil {
				l.Error("sequence failed",
					slog.String("execution", e.ID),
					slog.Int("attempts", e.Attempt+1),
					slog.String("reason", e.Reason.String()),
					slog.Duration("duration", e.Duration()),
					slog.Any("error", e.Err))
			} else {
				l.Info("sequence completed",
					slog.String("execution", e.ID),
					slog.Int("attempts", e.Attempt+1),
					slog.Int("status", e.StatusCode()),
					slog.Duration("duration", e.Duration()))
			}
		}
	})
}
