package core

// Color is the colour of a screen cell in the terminal rendition.
type Color uint8

// Colors used by the playfield.
const (
	ColorDefault Color = iota
	ColorRed             // Balloon
	ColorYellow          // Bullets
	ColorGray            // Cannon
	ColorBlack           // Text on a white background
)
