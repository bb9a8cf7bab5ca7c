package core

// Color is the foreground of a screen cell. The platform turns it into a
// terminal color through ANSI.
type Color uint8

// Palette used by the side-scroller renderer.
const (
	ColorDefault      Color = iota
	ColorRed                // Hurt player, health HUD
	ColorGreen              // Bottles
	ColorYellow             // Boss alert, splash
	ColorBlue               // Player in the air
	ColorMagenta            // Boss
	ColorCyan               // Player
	ColorWhite              // Chickens
	ColorBrightRed          // Attacking boss
	ColorBrightYellow       // Coins, small chickens
	ColorOrange             // Enemy feet
	ColorBrown              // Ground
	ColorGray               // Dead entities, level end, clock

	colorCount
)

// 256-color codes indexed by Color. The default color has none.
var ansiCodes = [colorCount]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightYellow: "11",
	ColorOrange:       "208",
	ColorBrown:        "130",
	ColorGray:         "245",
}

// ANSI returns the 256-color code of c, or "" for the terminal default
// and unknown values.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Palette returns every color in declaration order.
func Palette() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
