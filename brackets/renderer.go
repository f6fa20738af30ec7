package brackets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Геометрия сетки.
const (
	boxWidth   = 280
	boxHeight  = 48
	vSpacing   = 16
	matchGap   = 28
	marginX    = 50
	marginY    = 40
	stubLength = 30
	lineWidth  = 2
)

var (
	bgColor   = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	fgColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outputFmt = "bracket_round%d.png"
)

type Pairing struct {
	TeamA string
	TeamB string
}

// RenderBracket рисует пары первого раунда в PNG и возвращает путь к
// файлу. Чистая функция от списка пар: две рамки на матч, соединительная
// скоба справа, имена команд внутри рамок.
func RenderBracket(pairings []Pairing, round int) (string, error) {
	if len(pairings) == 0 {
		return "", fmt.Errorf("nothing to render: empty pairing list")
	}

	matchHeight := 2*boxHeight + vSpacing
	height := 2*marginY + len(pairings)*matchHeight + (len(pairings)-1)*matchGap
	width := 2*marginX + boxWidth + stubLength + 200

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(img, img.Bounds(), bgColor)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fgColor),
		Face: basicfont.Face7x13,
	}

	for i, p := range pairings {
		y := marginY + i*(matchHeight+matchGap)
		drawMatch(img, drawer, marginX, y, p)
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf(outputFmt, round))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create bracket image file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("failed to encode bracket image: %w", err)
	}
	return path, nil
}

func drawMatch(img *image.RGBA, drawer *font.Drawer, x, y int, p Pairing) {
	drawBox(img, x, y, p.TeamA, drawer)
	drawBox(img, x, y+boxHeight+vSpacing, p.TeamB, drawer)

	// Скоба к следующему раунду.
	midY1 := y + boxHeight/2
	midY2 := y + boxHeight + vSpacing + boxHeight/2
	midY := (midY1 + midY2) / 2
	hLine(img, x+boxWidth, x+boxWidth+stubLength, midY1)
	hLine(img, x+boxWidth, x+boxWidth+stubLength, midY2)
	vLine(img, x+boxWidth+stubLength, midY1, midY2)
	hLine(img, x+boxWidth+stubLength, x+boxWidth+stubLength+20, midY)
}

func drawBox(img *image.RGBA, x, y int, label string, drawer *font.Drawer) {
	hLine(img, x, x+boxWidth, y)
	hLine(img, x, x+boxWidth, y+boxHeight)
	vLine(img, x, y, y+boxHeight)
	vLine(img, x+boxWidth, y, y+boxHeight)

	drawer.Dot = fixed.P(x+10, y+boxHeight/2+5)
	drawer.DrawString(label)
}

func hLine(img *image.RGBA, x1, x2, y int) {
	fill(img, image.Rect(x1, y, x2+lineWidth, y+lineWidth), fgColor)
}

func vLine(img *image.RGBA, x, y1, y2 int) {
	fill(img, image.Rect(x, y1, x+lineWidth, y2+lineWidth), fgColor)
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
