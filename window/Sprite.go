package window

import (
	"Dodgeball/logger"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// loadSprite 讀不到圖時用同尺寸的純色方塊代替，不會中斷遊戲
func loadSprite(path string, width, height int, fallback color.Color) *ebiten.Image {
	return ebiten.NewImageFromImage(spriteSource(path, width, height, fallback))
}

func spriteSource(path string, width, height int, fallback color.Color) image.Image {
	img, err := decodeImage(path)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.SpriteLoadFailedMsg, path, err))
		return placeholder(width, height, fallback)
	}
	return scaleImage(img, width, height)
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func scaleImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func placeholder(width, height int, c color.Color) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return dst
}
