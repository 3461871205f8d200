package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/charmbracelet/lipgloss"
)

const (
	charW = 6
	charH = 12
)

// Recorder collects rendered grids as GIF frames.
type Recorder struct {
	frames []*image.Paletted
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Len() int { return len(r.frames) }

// Capture draws each visible cell as a block in its theme colour. Glyph
// shapes are not kept.
func (r *Recorder) Capture(g *Grid, t Theme) {
	palette := color.Palette{toRGBA(t.Background)}
	index := map[lipgloss.Color]uint8{t.Background: 0}

	img := image.NewPaletted(image.Rect(0, 0, g.Cols*charW, g.Rows*charH), nil)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := g.Cells[row][col]
			if cell.visible() == ' ' {
				continue
			}
			c := t.Shade(cell.Kind, cell.Alpha, cell.Hot)
			idx, ok := index[c]
			if !ok {
				if len(palette) == 256 {
					continue
				}
				idx = uint8(len(palette))
				palette = append(palette, toRGBA(c))
				index[c] = idx
			}
			for py := 1; py < charH-1; py++ {
				for px := 1; px < charW-1; px++ {
					img.SetColorIndex(col*charW+px, row*charH+py, idx)
				}
			}
		}
	}
	img.Palette = palette
	r.frames = append(r.frames, img)
}

// Save writes the frames as a looping GIF, dt seconds apart.
func (r *Recorder) Save(path string, dt float64) error {
	if len(r.frames) == 0 {
		return nil
	}
	delay := max(int(dt*100+0.5), 2)
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}

func toRGBA(c lipgloss.Color) color.RGBA {
	r, g, b := parseHex(string(c))
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
