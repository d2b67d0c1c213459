package pkg

import (
	"strconv"
	"strings"
	"time"
)

type prefixToken int

const (
	tokenNone prefixToken = iota
	tokenPid
	tokenIndex
	tokenName
	tokenCommand
	tokenTime
	// tokenTemplate is the fallback for free text containing {token} placeholders.
	tokenTemplate
)

var prefixTokenNames = map[prefixToken]string{
	tokenNone:    "none",
	tokenPid:     "pid",
	tokenIndex:   "index",
	tokenName:    "name",
	tokenCommand: "command",
	tokenTime:    "time",
}

func parsePrefixToken(format string) prefixToken {
	switch format {
	case "none":
		return tokenNone
	case "pid":
		return tokenPid
	case "index":
		return tokenIndex
	case "name":
		return tokenName
	case "command":
		return tokenCommand
	case "time":
		return tokenTime
	}
	return tokenTemplate
}

func (l *Logger) tokenValue(token prefixToken, command Command) string {
	switch token {
	case tokenNone:
		return ""
	case tokenPid:
		return strconv.Itoa(command.Pid)
	case tokenIndex:
		return strconv.Itoa(command.Index)
	case tokenName:
		return command.Name
	case tokenCommand:
		return shortenText(command.Command, l.options.PrefixLength)
	case tokenTime:
		return time.Now().Format(l.options.TimestampFormat)
	}
	return ""
}

// getPrefix resolves the line prefix for a command. An exact token match
// yields the bracketed value; anything else is treated as a template whose
// {token} placeholders get replaced globally. Unknown placeholders stay as
// literal text.
func (l *Logger) getPrefix(command Command) string {
	format := l.options.PrefixFormat
	if format == "" {
		if command.Name == "" {
			format = "index"
		} else {
			format = "name"
		}
	}
	token := parsePrefixToken(format)
	if token == tokenNone {
		return ""
	}
	if token != tokenTemplate {
		return "[" + l.tokenValue(token, command) + "]"
	}
	resolved := format
	for token, name := range prefixTokenNames {
		resolved = strings.ReplaceAll(resolved, "{"+name+"}", l.tokenValue(token, command))
	}
	return resolved
}
