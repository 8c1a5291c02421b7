package core

// Color is the foreground colour of a screen cell. Games pick colours by
// role; the platform turns them into terminal escape codes.
type Color uint8

// Colours used by the board.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlue
	ColorBrightCyan
	ColorOrange
	ColorGray

	NumColors // Number of defined colours
)

// ansiCodes holds the ANSI 256-colour code of every colour but the default.
var ansiCodes = [NumColors]string{
	ColorRed:        "1",
	ColorGreen:      "2",
	ColorYellow:     "3",
	ColorBlue:       "4",
	ColorMagenta:    "5",
	ColorCyan:       "6",
	ColorWhite:      "7",
	ColorBrightBlue: "12",
	ColorBrightCyan: "14",
	ColorOrange:     "208",
	ColorGray:       "245",
}

// ANSI returns the 256-colour code of c, or "" for the terminal default
// and for unknown values.
func (c Color) ANSI() string {
	if c >= NumColors {
		return ""
	}
	return ansiCodes[c]
}
