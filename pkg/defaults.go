package pkg

const (
	// DefaultPrefixLength caps the display width of the {command} prefix token.
	DefaultPrefixLength = 10

	// DefaultTimestampFormat is the reference-time layout for the {time} prefix token.
	DefaultTimestampFormat = "2006-01-02 15:04:05.000"
)
