package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// scaleImage resizes img to exactly w x h pixels.
func scaleImage(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// renderHalfBlocks draws img into cols x rows terminal cells. Each cell
// carries two vertical pixels: the upper one as foreground of '▀' and the
// lower one as background.
func renderHalfBlocks(img image.Image, cols, rows int) []string {
	if cols < 1 || rows < 1 {
		return nil
	}
	scaled := scaleImage(img, cols, rows*2)

	lines := make([]string, rows)
	var line strings.Builder
	for y := 0; y < rows; y++ {
		line.Reset()
		for x := 0; x < cols; x++ {
			top := scaled.At(x, y*2)
			bottom := scaled.At(x, y*2+1)
			style := lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom))
			line.WriteString(style.Render("▀"))
		}
		lines[y] = line.String()
	}
	return lines
}
