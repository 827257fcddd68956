package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// RunWindow opens the desktop window and drives app from ebiten's loop.
// It blocks until the window closes.
func RunWindow(app *App) error {
	face, err := loadFace(24)
	if err != nil {
		return err
	}
	g := &windowGame{app: app, face: face}

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type windowGame struct {
	app     *App
	face    font.Face
	frame   Frame
	diagram *ebiten.Image
}

func (g *windowGame) Update() error {
	// quit takes effect after the frame that observed it was drawn
	if !g.app.Running() {
		g.releaseDiagram()
		return ebiten.Termination
	}
	g.frame = g.app.Step(pollWindowEvents()...)
	return nil
}

func pollWindowEvents() []Event {
	var events []Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, Quit{})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, PointerPress{X: x, Y: y})
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl {
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			events = append(events, KeyPress{Key: KeyPaste})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			events = append(events, KeyPress{Key: KeyExport})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			events = append(events, KeyPress{Key: KeyCopy})
		}
	} else {
		for _, r := range ebiten.AppendInputChars(nil) {
			events = append(events, TextInsert{Text: string(r)})
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		events = append(events, KeyPress{Key: KeyConfirm})
	}
	if repeating(inpututil.KeyPressDuration(ebiten.KeyBackspace)) {
		events = append(events, KeyPress{Key: KeyBackspace})
	}
	return events
}

// repeating reports whether a key held for d ticks should fire this tick.
func repeating(d int) bool {
	const delay, interval = 30, 3
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(colorWhite)

	g.drawText(screen, "Horizontal Force:", fieldLabelX, windowLayout.Horizontal.Y, colorBlack)
	g.drawText(screen, "Vertical Force:", fieldLabelX, windowLayout.Vertical.Y, colorBlack)
	g.drawField(screen, windowLayout.Horizontal, g.frame.Horizontal, g.frame.Focus == FocusHorizontal)
	g.drawField(screen, windowLayout.Vertical, g.frame.Vertical, g.frame.Focus == FocusVertical)

	if r := g.frame.Result; r != nil {
		g.drawText(screen, r.MagnitudeText(), labelX, resultY, colorBlack)
		g.drawText(screen, r.AngleText(), labelX, angleY, colorBlack)
	} else {
		g.drawText(screen, g.frame.Message, labelX, resultY, colorRed)
	}
	if g.frame.Status != "" {
		g.drawText(screen, g.frame.Status, labelX, statusY, colorGrid)
	}

	g.releaseDiagram()
	if g.frame.Diagram == nil {
		return
	}
	g.diagram = ebiten.NewImageFromImage(g.frame.Diagram)
	op := &ebiten.DrawImageOptions{}
	scale := float64(defaultDiagramSize) / float64(g.frame.Diagram.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(diagramX, diagramY)
	screen.DrawImage(g.diagram, op)
}

// releaseDiagram frees last frame's GPU copy of the diagram.
func (g *windowGame) releaseDiagram() {
	if g.diagram != nil {
		g.diagram.Deallocate()
		g.diagram = nil
	}
}

func (g *windowGame) drawField(screen *ebiten.Image, r Rect, content string, focused bool) {
	border := color.Color(colorBlack)
	if focused {
		border = colorFocusField
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, border, false)
	g.drawText(screen, content, r.X+fieldTextPadX, r.Y+fieldTextPadX, colorBlack)
}

// drawText places s with its top edge at y.
func (g *windowGame) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	if s == "" {
		return
	}
	ascent := g.face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, g.face, x, y+ascent, clr)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

var _ ebiten.Game = (*windowGame)(nil)
