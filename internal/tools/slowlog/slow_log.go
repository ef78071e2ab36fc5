// Package slowlog times named phases of a run and writes each duration as
// a debug log line. The regression harness uses it to show where suite
// setup time goes.
package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
}

type slowLogger struct {
	log           *zerolog.Logger
	ongoingPhases map[string]time.Time
	sync.Mutex
}

func (s *slowLogger) Start(name string) {
	s.Lock()
	s.ongoingPhases[name] = time.Now()
	s.Unlock()
}

// Stop ends the named phase, logs its duration and returns it. Starting
// the same name again before Stop restarts the phase.
func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	start := s.ongoingPhases[name]
	duration := time.Since(start)

	s.log.Debug().
		Float64("duration", duration.Seconds()).
		Str("phase", name).
		Msg("")

	delete(s.ongoingPhases, name)

	return time.Since(start)
}

func CreateLogger(log *zerolog.Logger) *slowLogger {
	logger := log.With().Str("label", "slowlog").Logger()
	return &slowLogger{
		log:           &logger,
		ongoingPhases: make(map[string]time.Time),
	}
}
