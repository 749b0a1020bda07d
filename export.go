package main

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/gofont/gomono"
)

// exportPostcard writes the picture with its tile grid and a caption to
// filename as a PNG. moves is 0 when the puzzle was never played.
func exportPostcard(filename string, picture image.Image, moves int, recipient string) error {
	if picture == nil {
		return fmt.Errorf("nothing to export")
	}

	const (
		side    = pictureSize
		margin  = 24
		caption = 56
	)
	imageWidth := side + margin*2
	imageHeight := side + margin*2 + caption

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	dc.DrawImage(scaleImage(picture, side, side), margin, margin)

	// Tile grid
	dc.SetRGBA(1, 1, 1, 0.8)
	dc.SetLineWidth(2)
	step := float64(side) / gridSize
	for i := 1; i < gridSize; i++ {
		offset := float64(margin) + step*float64(i)
		dc.DrawLine(offset, margin, offset, margin+side)
		dc.DrawLine(margin, offset, margin+side, offset)
		dc.Stroke()
	}
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawRectangle(margin, margin, side, side)
	dc.Stroke()

	face, err := loadFace(gomono.TTF, 16)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(postcardCaption(moves, recipient), float64(imageWidth)/2, float64(side+margin*2)+caption/2-8, 0.5, 0.5)

	dc.SetRGB255(108, 112, 134)
	dc.DrawStringAnchored(time.Now().Format("January 2, 2006"), float64(imageWidth)/2, float64(side+margin*2)+caption/2+12, 0.5, 0.5)

	return dc.SavePNG(filename)
}

// postcardCaption names the solve when there was one, and only the recipient
// otherwise.
func postcardCaption(moves int, recipient string) string {
	if moves <= 0 {
		if recipient == "" {
			return "Thank you"
		}
		return "Thank you, " + recipient
	}
	text := fmt.Sprintf("Solved in %s", pluralMoves(moves))
	if recipient != "" {
		text += " by " + recipient
	}
	return text
}

func postcardName(now time.Time) string {
	return fmt.Sprintf("kudos-postcard-%s.png", now.Format("20060102-150405"))
}
