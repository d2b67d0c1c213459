package pkg

import (
	"container/ring"
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type commandStream struct {
	command Command
	stdout  *SafeBuffer
	stderr  *SafeBuffer
}

// LogStreamer funnels output from concurrently running commands into a single
// Logger. Producers write raw chunks into per-command SafeBuffers from any
// goroutine; the streamer drains complete lines on a ticker and forwards them
// one at a time, which keeps the Logger's single-caller contract intact.
type LogStreamer struct {
	logger     zerolog.Logger
	output     *Logger
	streams    []*commandStream
	quit       chan bool
	lineBuffer *ring.Ring
}

func NewLogStreamer(logger zerolog.Logger, output *Logger) *LogStreamer {
	return &LogStreamer{
		logger:     logger,
		output:     output,
		quit:       make(chan bool),
		lineBuffer: ring.New(20),
	}
}

// Register adds a command and returns the buffers its stdout and stderr
// should be attached to. Register all commands before calling Run.
func (s *LogStreamer) Register(command Command) (stdout, stderr *SafeBuffer) {
	stream := &commandStream{
		command: command,
		stdout:  &SafeBuffer{},
		stderr:  &SafeBuffer{},
	}
	s.streams = append(s.streams, stream)
	return stream.stdout, stream.stderr
}

// RecentLines returns up to the last 20 lines forwarded to the Logger,
// without their prefixes.
func (s *LogStreamer) RecentLines() []string {
	output := make([]string, 0)
	s.lineBuffer.Do(func(line any) {
		if line != nil {
			output = append(output, line.(string))
		}
	})
	return output
}

func (s *LogStreamer) Run(ctx context.Context) {
	s.logger.Trace().Msg("Starting log streamer ...")
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Trace().Msg("Shutting down log streamer ...")
			return
		case <-s.quit:
			s.logger.Trace().Msg("Shutting down log streamer ...")
			return
		case <-ticker.C:
			s.drain()
		}
	}
}

func (s *LogStreamer) drain() {
	for _, stream := range s.streams {
		s.drainBuffer(stream.command, stream.stderr)
		s.drainBuffer(stream.command, stream.stdout)
	}
}

func (s *LogStreamer) drainBuffer(command Command, buffer *SafeBuffer) {
	for {
		line, ok := buffer.ReadLine()
		if !ok {
			return
		}
		s.pushLine(command, line)
	}
}

func (s *LogStreamer) pushLine(command Command, line string) {
	s.output.LogCommandText(line, command)
	s.lineBuffer.Value = strings.TrimSuffix(line, "\n")
	s.lineBuffer = s.lineBuffer.Next()
}

// Flush waits for the buffered complete lines to drain, stops the Run loop,
// and forwards any trailing partial lines as-is. Call it after the producers
// have finished writing.
func (s *LogStreamer) Flush() {
	s.logger.Trace().Msg("Starting log streamer flush ...")
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(30 * time.Second)
	for s.pending() {
		select {
		case <-ticker.C:
			// Continue waiting
		case <-timeout:
			s.logger.Warn().Msg("Flush timeout reached, proceeding with remaining data")
			goto done
		}
	}
done:
	s.quit <- true
	time.Sleep(200 * time.Millisecond) // Allow 'Run' goroutine to quit
	for _, stream := range s.streams {
		s.flushRemainder(stream.command, stream.stderr)
		s.flushRemainder(stream.command, stream.stdout)
	}
	s.logger.Trace().Msg("Finished log streamer flush ...")
}

func (s *LogStreamer) pending() bool {
	for _, stream := range s.streams {
		if strings.ContainsRune(stream.stdout.String(), '\n') || strings.ContainsRune(stream.stderr.String(), '\n') {
			return true
		}
	}
	return false
}

func (s *LogStreamer) flushRemainder(command Command, buffer *SafeBuffer) {
	rest := buffer.Drain()
	if rest != "" {
		s.pushLine(command, rest)
	}
}
