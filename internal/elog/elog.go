// Package elog is the diagnostic event sink used by cmd/gramc, using a
// "LEVEL: message" log.Printf convention.
package elog

import (
	"log"
	"os"

	"github.com/pellham/nlgram/internal/ambiguity"
)

// Sink writes leveled diagnostic lines to an underlying *log.Logger.
type Sink struct {
	l *log.Logger
}

// New returns a Sink writing to os.Stderr with no extra prefix.
func New() *Sink {
	return &Sink{l: log.New(os.Stderr, "", log.LstdFlags)}
}

// NewWithWriter returns a Sink writing to an arbitrary writer.
func NewWithWriter(w interface{ Write([]byte) (int, error) }) *Sink {
	return &Sink{l: log.New(w, "", log.LstdFlags)}
}

func (s *Sink) Debug(format string, args ...any) { s.l.Printf("DEBUG: "+format, args...) }
func (s *Sink) Info(format string, args ...any)  { s.l.Printf("INFO: "+format, args...) }
func (s *Sink) Warn(format string, args ...any)  { s.l.Printf("WARN: "+format, args...) }
func (s *Sink) Error(format string, args ...any) { s.l.Printf("ERROR: "+format, args...) }

// Ambiguity renders a detected witness as a WARN-level diagnostic.
func (s *Sink) Ambiguity(w ambiguity.Witness) {
	s.l.Printf("WARN: ambiguity in %s: rule %q and rule %q both derive %q",
		w.Symbol, w.RuleA.String(), w.RuleB.String(), w.Fringe)
}
