package pkg

import (
	"bytes"
	"sync"
)

// SafeBuffer is a goroutine safe bytes.Buffer. It serves both as the intake
// side of a LogStreamer and as a sink that tolerates interleaved writers.
type SafeBuffer struct {
	buffer bytes.Buffer
	mutex  sync.Mutex
}

// Write appends the contents of p to the buffer, growing the buffer as needed.
func (s *SafeBuffer) Write(p []byte) (n int, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.buffer.Write(p)
}

// String returns the contents of the unread portion of the buffer as a string.
func (s *SafeBuffer) String() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.buffer.String()
}

// Len returns the number of unread bytes in the buffer.
func (s *SafeBuffer) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.buffer.Len()
}

// ReadLine pops one newline-terminated line, delimiter included. It reports
// false without consuming anything when no complete line is buffered yet, so
// a partial chunk stays put until its newline arrives.
func (s *SafeBuffer) ReadLine() (string, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !bytes.ContainsRune(s.buffer.Bytes(), '\n') {
		return "", false
	}
	line, _ := s.buffer.ReadString('\n')
	return line, true
}

// Drain empties the buffer and returns whatever it held, complete line or not.
func (s *SafeBuffer) Drain() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	out := s.buffer.String()
	s.buffer.Reset()
	return out
}
