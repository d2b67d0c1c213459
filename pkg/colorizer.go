package pkg

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Styler renders text in a single style. A command's color specifier resolves
// to one of two implementations: a named-style lookup or a #RRGGBB hex style.
type Styler interface {
	Style(text string) string
}

type namedStyler struct {
	color *color.Color
}

func (s namedStyler) Style(text string) string {
	return s.color.Sprint(text)
}

type rgbStyler struct {
	color *color.Color
}

func (s rgbStyler) Style(text string) string {
	return s.color.Sprint(text)
}

var namedStyles = map[string]*color.Color{
	"black":         color.New(color.FgBlack),
	"red":           color.New(color.FgRed),
	"green":         color.New(color.FgGreen),
	"yellow":        color.New(color.FgYellow),
	"blue":          color.New(color.FgBlue),
	"magenta":       color.New(color.FgMagenta),
	"cyan":          color.New(color.FgCyan),
	"white":         color.New(color.FgWhite),
	"gray":          color.New(color.FgHiBlack),
	"grey":          color.New(color.FgHiBlack),
	"blackBright":   color.New(color.FgHiBlack),
	"redBright":     color.New(color.FgHiRed),
	"greenBright":   color.New(color.FgHiGreen),
	"yellowBright":  color.New(color.FgHiYellow),
	"blueBright":    color.New(color.FgHiBlue),
	"magentaBright": color.New(color.FgHiMagenta),
	"cyanBright":    color.New(color.FgHiCyan),
	"whiteBright":   color.New(color.FgHiWhite),
	"bold":          color.New(color.Bold),
	"dim":           color.New(color.Faint),
	"underline":     color.New(color.Underline),
}

var resetStyler = namedStyler{color: color.New(color.Reset)}

func hexStyler(spec string) (Styler, bool) {
	if len(spec) != 7 || !strings.HasPrefix(spec, "#") {
		return nil, false
	}
	value, err := strconv.ParseUint(spec[1:], 16, 32)
	if err != nil {
		return nil, false
	}
	return rgbStyler{color: color.RGB(int(value>>16&0xff), int(value>>8&0xff), int(value&0xff))}, true
}

// stylerFor resolves a color specifier, falling back to the configured
// default style name and finally to reset.
func stylerFor(spec, fallback string) Styler {
	if strings.HasPrefix(spec, "#") {
		if styler, ok := hexStyler(spec); ok {
			return styler
		}
	}
	if c, ok := namedStyles[spec]; ok {
		return namedStyler{color: c}
	}
	if c, ok := namedStyles[fallback]; ok {
		return namedStyler{color: c}
	}
	return resetStyler
}
