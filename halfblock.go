package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const upperHalfBlock = "▀"

// renderHalfBlocks draws img into cols×rows terminal cells. Each cell shows
// two vertically stacked pixels: the upper one as foreground of "▀" and the
// lower one as background.
func renderHalfBlocks(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	scaled := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	styles := make(map[[2]color.RGBA]lipgloss.Style)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			key := [2]color.RGBA{scaled.RGBAAt(col, row*2), scaled.RGBAAt(col, row*2+1)}
			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(hexColor(key[0]))).
					Background(lipgloss.Color(hexColor(key[1])))
				styles[key] = style
			}
			b.WriteString(style.Render(upperHalfBlock))
		}
	}
	return b.String()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
