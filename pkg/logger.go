package pkg

import (
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Command describes one running task whose output gets formatted. The
// orchestrator supplies it on every call; the Logger keeps no record of it.
type Command struct {
	Pid     int
	Index   int
	Name    string
	Command string
	// PrefixColor is a named style or a #RRGGBB value.
	PrefixColor string
}

// Logger formats per-command output and writes it to a single shared sink,
// stamping a colorized prefix at the start of every visual line. The last
// written byte is kept across calls so chunked writes that split a line are
// still prefixed exactly once. A Logger must not be called concurrently; use
// a LogStreamer to funnel output from parallel producers.
type Logger struct {
	options  Options
	out      io.Writer
	logger   zerolog.Logger
	lastChar byte
	wrote    bool
}

func NewLogger(logger zerolog.Logger, out io.Writer, options Options) *Logger {
	hide := make([]string, 0, len(options.Hide))
	for _, token := range options.Hide {
		if token != "" {
			hide = append(hide, token)
		}
	}
	options.Hide = hide
	if options.PrefixLength <= 0 {
		options.PrefixLength = DefaultPrefixLength
	}
	if options.TimestampFormat == "" {
		options.TimestampFormat = DefaultTimestampFormat
	}
	return &Logger{
		options: options,
		out:     out,
		logger:  logger,
	}
}

func (l *Logger) hidden(command Command) bool {
	for _, token := range l.options.Hide {
		if token == strconv.Itoa(command.Index) || token == command.Name {
			return true
		}
	}
	return false
}

func (l *Logger) colorText(command Command, text string) string {
	return stylerFor(command.PrefixColor, l.options.DefaultColor).Style(text)
}

// LogCommandEvent writes a lifecycle banner for a command, such as a started
// or exited notice. Hidden commands stay silent because the text routes
// through LogCommandText.
func (l *Logger) LogCommandEvent(text string, command Command) {
	if l.options.Raw {
		return
	}
	l.LogCommandText(resetStyler.Style(text)+"\n", command)
}

// LogCommandText writes a chunk of command output, which may start or end
// mid-line. Commands whose stringified index or name is in the hide list
// produce no output at all, raw mode included.
func (l *Logger) LogCommandText(text string, command Command) {
	if l.hidden(command) {
		l.logger.Trace().Int("index", command.Index).Str("name", command.Name).Msg("Suppressing output for hidden command")
		MetricWritesSuppressed.Inc()
		return
	}
	prefix := l.getPrefix(command)
	if prefix != "" {
		prefix = l.colorText(command, prefix) + " "
	}
	MetricLinesWritten.WithLabelValues(commandLabel(command)).Add(float64(strings.Count(text, "\n")))
	l.write(prefix, text)
}

// LogGlobalEvent writes output not tied to any command, marked with an arrow
// instead of a command prefix. The hide list never applies here.
func (l *Logger) LogGlobalEvent(text string) {
	if l.options.Raw {
		return
	}
	l.write(resetStyler.Style("-->")+" ", resetStyler.Style(text)+"\n")
}

func (l *Logger) write(prefix, text string) {
	if l.options.Raw {
		l.emit(text)
		return
	}
	// Some terminals mis-render the ellipsis rune when clearing lines.
	text = strings.ReplaceAll(text, "…", "...")
	lines := strings.Split(text, "\n")
	// The first line continues whatever the previous write left behind, so
	// its prefix decision happens below against lastChar. The last line is
	// either the empty remainder after a trailing newline or a partial line
	// whose prefix belongs to a later write.
	for i := 1; i < len(lines)-1; i++ {
		lines[i] = prefix + lines[i]
	}
	if !l.wrote || l.lastChar == '\n' {
		l.emit(prefix)
	}
	if len(text) > 0 {
		l.lastChar = text[len(text)-1]
		l.wrote = true
	} else {
		l.wrote = false
	}
	l.emit(strings.Join(lines, "\n"))
}

// emit is fire-and-forget: sink failures are the sink's own problem and are
// neither caught nor retried here.
func (l *Logger) emit(text string) {
	if text == "" {
		return
	}
	n, _ := io.WriteString(l.out, text)
	MetricBytesWritten.Add(float64(n))
}

func commandLabel(command Command) string {
	if command.Name != "" {
		return command.Name
	}
	return strconv.Itoa(command.Index)
}
