package window

import (
	"Dodgeball/logger"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faces struct {
	title  font.Face
	menu   font.Face
	banner font.Face
	small  font.Face
}

func loadFaces() faces {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.FontLoadFailedMsg, err))
		return faces{basicfont.Face7x13, basicfont.Face7x13, basicfont.Face7x13, basicfont.Face7x13}
	}

	newFace := func(size float64) font.Face {
		f, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.FontLoadFailedMsg, err))
			return basicfont.Face7x13
		}
		return f
	}

	return faces{
		title:  newFace(72),
		menu:   newFace(28),
		banner: newFace(64),
		small:  newFace(24),
	}
}

func measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func lineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// drawCentered 以 (cx, cy) 為中心畫字
func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	x := cx - measure(face, s)/2
	y := cy - lineHeight(face)/2
	text.Draw(dst, s, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}
