package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderingApp(t *testing.T) *App {
	t.Helper()
	return NewApp(windowLayout, nil, newTestRenderer(t, minDiagramSize), &fakeClipboard{}, nil)
}

func fill(app *App, horizontal, vertical string) Frame {
	events := []Event{clickHorizontal()}
	events = append(events, typeText(horizontal)...)
	events = append(events, clickVertical())
	events = append(events, typeText(vertical)...)
	events = append(events, KeyPress{Key: KeyConfirm})
	return app.Step(events...)
}

func TestFrameScenarios(t *testing.T) {
	tests := []struct {
		name       string
		h, v       string
		magnitude  string
		angle      string
		halfExtent float64
	}{
		{"three four", "3", "4", "Resultant Force: 5.00", "Angle: 53.13 degrees", 4},
		{"empty fields", "", "", "Resultant Force: 0.00", "Angle: 0.00 degrees", 1},
		{"negative horizontal", "-5", "0", "Resultant Force: 5.00", "Angle: 180.00 degrees", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRenderingApp(t)
			f := fill(app, tt.h, tt.v)

			require.NotNil(t, f.Result)
			assert.Equal(t, tt.magnitude, f.Result.MagnitudeText())
			assert.Equal(t, tt.angle, f.Result.AngleText())
			assert.Empty(t, f.Message)
			require.NotNil(t, f.Diagram)
			assert.Equal(t, minDiagramSize, f.Diagram.Bounds().Dx())

			sample, err := ParseSample(f.Horizontal, f.Vertical)
			require.NoError(t, err)
			assert.Equal(t, tt.halfExtent, NewDiagram(sample.Horizontal, sample.Vertical).HalfExtent)
		})
	}
}

func TestFrameInvalidInput(t *testing.T) {
	app := newRenderingApp(t)
	valid := fill(app, "3", "4")
	require.NotNil(t, valid.Diagram)

	app.Apply(clickHorizontal(), KeyPress{Key: KeyBackspace})
	f := app.Step(typeText("abc")...)

	assert.Equal(t, "abc", f.Horizontal)
	assert.Equal(t, invalidInputMessage, f.Message)
	assert.Nil(t, f.Result)
	assert.Nil(t, f.Diagram)
	assert.Zero(t, app.renderer.Live())

	app.Apply(KeyPress{Key: KeyBackspace}, KeyPress{Key: KeyBackspace}, KeyPress{Key: KeyBackspace})
	f = app.Step(TextInsert{Text: "6"})
	require.NotNil(t, f.Result)
	assert.Equal(t, "Resultant Force: 7.21", f.Result.MagnitudeText())
	assert.NotNil(t, f.Diagram)
}

func TestFrameWithoutRenderer(t *testing.T) {
	app := newTestApp(t)
	f := fill(app, "1", "1")
	require.NotNil(t, f.Result)
	assert.Nil(t, f.Diagram)
}

func TestFrameIgnoresTypingAfterConfirm(t *testing.T) {
	app := newRenderingApp(t)
	events := append([]Event{clickVertical()}, typeText("10")...)
	events = append(events, KeyPress{Key: KeyConfirm}, TextInsert{Text: "5"})
	f := app.Step(events...)

	assert.Equal(t, "10", f.Vertical)
	assert.Equal(t, FocusNone, f.Focus)
	require.NotNil(t, f.Result)
	assert.Equal(t, "Resultant Force: 10.00", f.Result.MagnitudeText())
	assert.Equal(t, "Angle: 90.00 degrees", f.Result.AngleText())
}
