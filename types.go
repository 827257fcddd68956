package main

import (
	"image"

	"go.uber.org/zap"
)

// Rect is an axis-aligned region in the coordinate space of the frontend
// that created it: pixels for the window, cells for the terminal.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type TextField struct {
	Region Rect
	Text   string
}

type App struct {
	horizontal TextField
	vertical   TextField
	focus      Focus
	running    bool
	status     string

	config    *Config
	renderer  *Renderer
	clipboard Clipboard
	logger    *zap.Logger
}

type ForceSample struct {
	Horizontal float64
	Vertical   float64
}

type ResolvedForce struct {
	Magnitude    float64
	AngleDegrees float64
}

// Frame is everything one iteration of the loop presents.
type Frame struct {
	Horizontal string
	Vertical   string
	Focus      Focus
	Result     *ResolvedForce
	Diagram    *image.RGBA
	Message    string
	Status     string
}

type Layout struct {
	Horizontal Rect
	Vertical   Rect
}

type Event interface {
	isEvent()
}

type PointerPress struct {
	X, Y int
}

type KeyPress struct {
	Key Key
}

type TextInsert struct {
	Text string
}

type Quit struct{}

func (PointerPress) isEvent() {}
func (KeyPress) isEvent()     {}
func (TextInsert) isEvent()   {}
func (Quit) isEvent()         {}
