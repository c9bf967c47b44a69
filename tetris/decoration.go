package tetris

// ColorID is an opaque color token. Zero means no color.
type ColorID uint8

// TextureID is an opaque texture token. Zero means no texture and the cell is
// drawn with its plain color.
type TextureID uint32

// Decoration is what a presentation layer needs to draw a single occupied cell.
type Decoration struct {
	Color   ColorID
	Texture TextureID
}

// IsZero reports whether d carries neither a color nor a texture.
func (d Decoration) IsZero() bool {
	return d == Decoration{}
}

// HasTexture reports whether d references a texture.
func (d Decoration) HasTexture() bool {
	return d.Texture != 0
}

var kindRGB = [KindCount][3]uint8{
	{0, 255, 255}, // I
	{128, 0, 128}, // T
	{255, 255, 0}, // O
	{0, 255, 0},   // S
	{255, 0, 0},   // Z
	{0, 0, 255},   // L
	{255, 165, 0}, // J
}

// ColorOf returns the fixed color token of a kind.
func ColorOf(k Kind) ColorID {
	if !k.Valid() {
		return 0
	}
	return ColorID(k) + 1
}

// Kind returns the kind whose fixed color c is, and false for ColorID(0) or
// unknown ids.
func (c ColorID) Kind() (Kind, bool) {
	if c == 0 || int(c) > KindCount {
		return 0, false
	}
	return Kind(c - 1), true
}

// RGB returns the default palette entry for c. Unknown ids are white.
func (c ColorID) RGB() (r, g, b uint8) {
	k, ok := c.Kind()
	if !ok {
		return 255, 255, 255
	}
	rgb := kindRGB[k]
	return rgb[0], rgb[1], rgb[2]
}
