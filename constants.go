package main

import "image/color"

type Focus int

const (
	FocusNone Focus = iota
	FocusHorizontal
	FocusVertical
)

func (f Focus) String() string {
	switch f {
	case FocusHorizontal:
		return "horizontal"
	case FocusVertical:
		return "vertical"
	default:
		return "none"
	}
}

type Key int

const (
	KeyConfirm Key = iota
	KeyBackspace
	KeyPaste
	KeyExport
	KeyCopy
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

const (
	windowWidth  = 800
	windowHeight = 900
	windowTitle  = "Force Vector Calculator"

	defaultDiagramSize = 600
	minDiagramSize     = 200
	maxDiagramSize     = 1200

	invalidInputMessage = "Please enter valid numbers"
	diagramTitle        = "Force Vectors"
	horizontalAxisLabel = "Horizontal Force"
	verticalAxisLabel   = "Vertical Force"
)

// Pixel layout of the window frontend.
var windowLayout = Layout{
	Horizontal: Rect{X: 200, Y: 50, W: 140, H: 32},
	Vertical:   Rect{X: 200, Y: 100, W: 140, H: 32},
}

const (
	labelX        = 50
	fieldLabelX   = 10
	resultY       = 150
	angleY        = 190
	statusY       = 220
	diagramX      = 100
	diagramY      = 250
	fieldTextPadX = 5
)

var (
	colorWhite      = color.RGBA{255, 255, 255, 255}
	colorBlack      = color.RGBA{0, 0, 0, 255}
	colorRed        = color.RGBA{255, 0, 0, 255}
	colorBlue       = color.RGBA{0, 0, 255, 255}
	colorGreen      = color.RGBA{0, 128, 0, 255}
	colorGrid       = color.RGBA{176, 176, 176, 255}
	colorFocusField = color.RGBA{30, 144, 255, 255}
)
