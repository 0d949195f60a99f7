package main

import (
	"bytes"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Global font source for overlay and error image text
var globalFontSource *text.GoTextFaceSource

// InitGraphics initializes the global font source for text rendering
func InitGraphics() error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	globalFontSource = s
	return nil
}

// DrawText draws text with specified position and color
func DrawText(screen *ebiten.Image, textString string, font *text.GoTextFace, x, y float64, textColor color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, textString, font, op)
}

// DrawFilledRect draws filled rectangles with float64 coordinates
func DrawFilledRect(screen *ebiten.Image, x, y, w, h float64, bgColor color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, false)
}

// checkerCellSize is the edge length of one checkerboard cell in pixels.
const checkerCellSize = 16

var (
	checkerDark  = color.RGBA{32, 32, 32, 255}
	checkerLight = color.RGBA{64, 64, 64, 255}
)

// DrawCheckerboard fills the screen with the alternating backdrop used
// behind transparent images.
func DrawCheckerboard(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(checkerDark)
	for y := 0; y*checkerCellSize < h; y++ {
		for x := 0; x*checkerCellSize < w; x++ {
			if (x+y)%2 == 0 {
				continue
			}
			DrawFilledRect(screen,
				float64(x*checkerCellSize), float64(y*checkerCellSize),
				checkerCellSize, checkerCellSize, checkerLight)
		}
	}
}

func drawErrorBorder(img *ebiten.Image, width, height int) {
	white := color.RGBA{255, 255, 255, 255}
	DrawFilledRect(img, 0, 0, float64(width), 3, white)
	DrawFilledRect(img, 0, float64(height-3), float64(width), 3, white)
	DrawFilledRect(img, 0, 0, 3, float64(height), white)
	DrawFilledRect(img, float64(width-3), 0, 3, float64(height), white)
}

// CreateErrorImage creates an error placeholder image with filename and error message
func CreateErrorImage(width, height int, filename, errorMsg string) *ebiten.Image {
	// Default size if not specified
	if width <= 0 || height <= 0 {
		width, height = 400, 300
	}

	errorImg := ebiten.NewImage(width, height)
	errorImg.Fill(color.RGBA{120, 30, 30, 255}) // Dark red background
	drawErrorBorder(errorImg, width, height)

	if globalFontSource == nil {
		// No font yet; the bordered rectangle alone marks the failure
		return errorImg
	}

	errorFont := &text.GoTextFace{
		Source: globalFontSource,
		Size:   20.0,
	}

	fileText := "File: " + filepath.Base(filename)
	reasonText := "Reason: " + errorMsg

	// Truncate long text to fit within image bounds
	maxChars := (width - 20) / 10 // Rough estimate: 10px per character
	if len(fileText) > maxChars {
		fileText = fileText[:maxChars-3] + "..."
	}
	if len(reasonText) > maxChars {
		reasonText = reasonText[:maxChars-3] + "..."
	}

	white := color.RGBA{255, 255, 255, 255}
	DrawText(errorImg, "ERROR", errorFont, 10, 30, white)
	DrawText(errorImg, fileText, errorFont, 10, 60, white)
	DrawText(errorImg, reasonText, errorFont, 10, 90, white)

	return errorImg
}
