// Package sigstack provides a stack-based signal handler.
//
// Several components may want the same signal at different times.
// For example, scribe cancels its work on Ctrl-C,
// except while an editor is in the foreground:
// the terminal delivers Ctrl-C to the editor and to scribe alike,
// and only the editor should react to it.
// With a Stack, the editor session pushes its own handler
// for the duration of the edit,
// and the outer handler resumes receiving signals when it's popped.
package sigstack

import (
	"os"
	"os/signal"
	"slices"
	"sync"
)

// Signal is an alias for [os.Signal].
type Signal = os.Signal

// Stack manages a stack of signal receivers per signal.
// When a signal fires, only the topmost receiver gets it.
//
// The zero value is ready to use.
type Stack struct {
	mu       sync.Mutex
	handlers map[Signal]*handler
	bySub    map[chan<- Signal][]Signal
}

// handler relays one signal from os/signal
// to the receiver on top of its stack.
type handler struct {
	incoming chan os.Signal
	quit     chan struct{}
	subs     []chan<- Signal // top is last
}

// Notify registers ch to receive the given signals,
// pushing it on top of the stack for each of them.
//
// Like [signal.Notify], delivery does not block,
// so ch should be buffered.
func (s *Stack) Notify(ch chan<- Signal, sigs ...Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handlers == nil {
		s.handlers = make(map[Signal]*handler)
		s.bySub = make(map[chan<- Signal][]Signal)
	}

	for _, sig := range sigs {
		h, ok := s.handlers[sig]
		if !ok {
			h = &handler{
				incoming: make(chan os.Signal, 1),
				quit:     make(chan struct{}),
			}
			s.handlers[sig] = h
			signal.Notify(h.incoming, sig)
			go s.relay(sig, h)
		}
		h.subs = append(h.subs, ch)
	}
	s.bySub[ch] = append(s.bySub[ch], sigs...)
}

// Stop removes ch from every stack it was pushed on,
// regardless of its position.
// Once a signal has no receivers left,
// its default behavior is restored.
//
// Stop is a no-op for channels that aren't registered.
func (s *Stack) Stop(ch chan<- Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sigs, ok := s.bySub[ch]
	if !ok {
		return
	}
	delete(s.bySub, ch)

	for _, sig := range sigs {
		h, ok := s.handlers[sig]
		if !ok {
			continue
		}

		h.subs = slices.DeleteFunc(h.subs, func(c chan<- Signal) bool {
			return c == ch
		})
		if len(h.subs) == 0 {
			signal.Stop(h.incoming)
			close(h.quit)
			delete(s.handlers, sig)
		}
	}
}

// Shield pushes a receiver that discards the given signals,
// hiding them from everything below it on the stack.
// The returned function pops it again.
func (s *Stack) Shield(sigs ...Signal) (unshield func()) {
	ch := make(chan Signal, 1)
	s.Notify(ch, sigs...)
	return func() { s.Stop(ch) }
}

func (s *Stack) relay(sig Signal, h *handler) {
	for {
		select {
		case <-h.incoming:
			s.mu.Lock()
			var top chan<- Signal
			if n := len(h.subs); n > 0 {
				top = h.subs[n-1]
			}
			s.mu.Unlock()

			if top == nil {
				continue
			}

			select {
			case top <- sig:
			default:
			}

		case <-h.quit:
			return
		}
	}
}
