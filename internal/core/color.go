package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility; the palette is
// quantized from the classic daytime Flappy Bird scheme.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault  Color = iota
	ColorSky            // light cyan sky tone
	ColorPipe           // pipe body green
	ColorPipeDark       // pipe cap and edge shading
	ColorBird           // body yellow
	ColorBirdWing       // darker wing yellow
	ColorBeak           // orange-red beak
	ColorGrass          // ground grass strip
	ColorDirt           // ground dirt
	ColorHill           // background hills
	ColorWhite          // HUD text, score
	ColorGray           // secondary HUD text
	ColorRed            // death flash, warnings
)
