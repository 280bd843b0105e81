package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
)

// RGB is a plain 8-bit color triple for pixel renderers.
type RGB struct {
	R, G, B uint8
}

// Sprite identifies what a draw command depicts.
// Renderers map sprites to glyphs or pixels; the core never does.
type Sprite int

const (
	SpriteNone Sprite = iota
	SpriteSnakeHead
	SpriteSnakeBody
	SpriteTrail // A cell the snake just left; renderers erase it
	SpriteCatOrange
	SpriteCatRed
	SpriteCatGreen
	SpriteCatBlackWhite
	SpriteBadger
	SpriteHoneyBadger
)

// SpriteStyle describes how a sprite looks on each kind of surface.
type SpriteStyle struct {
	Glyph [2]rune // Two terminal columns per grid cell
	Color Color   // Terminal color
	Fill  RGB     // Window fill color
}

// Board colors shared by pixel renderers.
var (
	BoardBackground = RGB{R: 0, G: 0, B: 0}
	BorderColor     = RGB{R: 93, G: 216, B: 228}
)

var spriteStyles = map[Sprite]SpriteStyle{
	SpriteSnakeHead:     {Glyph: [2]rune{'█', '█'}, Color: ColorBrightGreen, Fill: RGB{R: 0, G: 255, B: 0}},
	SpriteSnakeBody:     {Glyph: [2]rune{'▓', '▓'}, Color: ColorGreen, Fill: RGB{R: 0, G: 200, B: 0}},
	SpriteTrail:         {Glyph: [2]rune{' ', ' '}, Color: ColorDefault, Fill: BoardBackground},
	SpriteCatOrange:     {Glyph: [2]rune{'=', '^'}, Color: ColorOrange, Fill: RGB{R: 255, G: 165, B: 0}},
	SpriteCatRed:        {Glyph: [2]rune{'=', '^'}, Color: ColorRed, Fill: RGB{R: 255, G: 0, B: 0}},
	SpriteCatGreen:      {Glyph: [2]rune{'=', '^'}, Color: ColorYellow, Fill: RGB{R: 120, G: 220, B: 60}},
	SpriteCatBlackWhite: {Glyph: [2]rune{'=', '^'}, Color: ColorBrightWhite, Fill: RGB{R: 230, G: 230, B: 230}},
	SpriteBadger:        {Glyph: [2]rune{'B', 'B'}, Color: ColorGray, Fill: RGB{R: 128, G: 128, B: 128}},
	SpriteHoneyBadger:   {Glyph: [2]rune{'H', 'B'}, Color: ColorBrown, Fill: RGB{R: 160, G: 100, B: 40}},
}

// Style returns the rendering style of a sprite.
// Unknown sprites render as blank cells.
func (s Sprite) Style() SpriteStyle {
	if st, ok := spriteStyles[s]; ok {
		return st
	}
	return SpriteStyle{Glyph: [2]rune{' ', ' '}, Fill: BoardBackground}
}
