package cli

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Spinner displays an animated spinner during long operations
type Spinner struct {
	frames   []string
	label    string
	interval time.Duration
	writer   io.Writer
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewSpinner creates a spinner that prints label after each frame.
func NewSpinner(w io.Writer, label string) *Spinner {
	return &Spinner{
		frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		label:    label,
		interval: 80 * time.Millisecond,
		writer:   w,
		stopChan: make(chan struct{}),
	}
}

// Start begins the spinner animation
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		idx := 0
		for {
			fmt.Fprintf(s.writer, "\r%s %s", s.frames[idx%len(s.frames)], s.label)
			idx++
			select {
			case <-s.stopChan:
				fmt.Fprint(s.writer, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop stops the spinner animation and clears its line. A stopped spinner
// cannot be restarted.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopChan)
	s.wg.Wait()
}
