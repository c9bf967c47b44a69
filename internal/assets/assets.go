// Package assets loads cell textures and maps decorations to drawable images and
// colors for the ebiten front-end.
package assets

import (
	"fmt"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// Registry holds the textures referenced by TextureID. Ids are assigned from 1 in
// the order textures are added.
type Registry struct {
	cellSize int
	textures *intmap.Map[tetris.TextureID, *ebiten.Image]
	names    []string
}

// NewRegistry returns an empty registry whose textures are scaled to cellSize.
func NewRegistry(cellSize int) *Registry {
	return &Registry{
		cellSize: cellSize,
		textures: intmap.New[tetris.TextureID, *ebiten.Image](16),
	}
}

// TextureFiles returns the PNG files of dir in name order. A missing directory
// yields no files.
func TextureFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading texture dir %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	slices.Sort(files)
	return files, nil
}

// LoadDir builds a registry from the PNG files of dir. Files that fail to decode
// are logged and skipped.
func LoadDir(dir string, cellSize int, logger *log.Logger) (*Registry, error) {
	files, err := TextureFiles(dir)
	if err != nil {
		return nil, err
	}

	r := NewRegistry(cellSize)
	if len(files) == 0 {
		logger.Printf("no textures in %s, drawing plain colors", dir)
		return r, nil
	}
	for _, file := range files {
		img, _, err := ebitenutil.NewImageFromFile(file)
		if err != nil {
			logger.Printf("skipping texture %s: %v", file, err)
			continue
		}
		id := r.Add(filepath.Base(file), img)
		logger.Printf("texture %d: %s", id, file)
	}
	return r, nil
}

// Add scales img to the cell size and registers it under the next free id.
func (r *Registry) Add(name string, img *ebiten.Image) tetris.TextureID {
	id := tetris.TextureID(r.textures.Len() + 1)
	r.textures.Put(id, r.scale(img))
	r.names = append(r.names, name)
	return id
}

func (r *Registry) scale(img *ebiten.Image) *ebiten.Image {
	bounds := img.Bounds()
	if bounds.Dx() == r.cellSize && bounds.Dy() == r.cellSize {
		return img
	}
	cell := ebiten.NewImage(r.cellSize, r.cellSize)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(r.cellSize)/float64(bounds.Dx()), float64(r.cellSize)/float64(bounds.Dy()))
	opts.Filter = ebiten.FilterLinear
	cell.DrawImage(img, opts)
	return cell
}

// Count returns the number of textures. It is the texture count handed to the
// session so that spawned pieces only reference loaded textures.
func (r *Registry) Count() int {
	return r.textures.Len()
}

// Names returns the texture file names in id order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Texture returns the image of id, or nil when id is unknown.
func (r *Registry) Texture(id tetris.TextureID) *ebiten.Image {
	if id == 0 {
		return nil
	}
	img, ok := r.textures.Get(id)
	if !ok {
		return nil
	}
	return img
}

// Color returns the fill color of a decoration.
func Color(d tetris.Decoration) color.RGBA {
	red, green, blue := d.Color.RGB()
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

// Ghost returns the translucent color of the landing preview.
func Ghost(d tetris.Decoration) color.RGBA {
	c := Color(d)
	c.R, c.G, c.B, c.A = c.R/4, c.G/4, c.B/4, 64
	return c
}
