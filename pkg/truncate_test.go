package pkg

import (
	"testing"

	"github.com/rocktavious/autopilot/v2023"
)

func TestShortenText(t *testing.T) {
	// Arrange / Act / Assert
	autopilot.Equals(t, "", shortenText("", 10))
	autopilot.Equals(t, "short", shortenText("short", 10))
	autopilot.Equals(t, "exactlyten", shortenText("exactlyten", 10))
	autopilot.Equals(t, "npm ..atch", shortenText("npm run test:watch", 10))
}

func TestShortenTextIsIdempotent(t *testing.T) {
	// Arrange
	once := shortenText("npm run test:watch", 10)
	// Act
	twice := shortenText(once, 10)
	// Assert
	autopilot.Equals(t, once, twice)
}

func TestShortenTextOutputLength(t *testing.T) {
	for _, max := range []int{3, 5, 10, 17} {
		autopilot.Equals(t, max, len([]rune(shortenText("abcdefghijklmnopqrstuvwxyz", max))))
	}
}

func TestShortenTextDegenerateWidths(t *testing.T) {
	// Widths at or below the marker length degrade to the marker itself.
	autopilot.Equals(t, "..", shortenText("abcdef", 2))
	autopilot.Equals(t, "..", shortenText("abcdef", 1))
	autopilot.Equals(t, "..", shortenText("abcdef", 0))
}
