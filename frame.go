package main

import (
	"errors"

	"go.uber.org/zap"
)

// Step runs one iteration of the loop: apply this frame's events, then
// derive everything that will be presented from the current field text.
func (a *App) Step(events ...Event) Frame {
	a.Apply(events...)
	return a.Frame()
}

func (a *App) Frame() Frame {
	f := Frame{
		Horizontal: a.horizontal.Text,
		Vertical:   a.vertical.Text,
		Focus:      a.focus,
		Status:     a.status,
	}

	sample, err := a.sample()
	if err != nil {
		f.Message = invalidInputMessage
		return f
	}

	result := Resolve(sample.Horizontal, sample.Vertical)
	f.Result = &result

	if a.renderer == nil {
		return f
	}
	img, err := a.renderer.Render(sample.Horizontal, sample.Vertical)
	if err != nil {
		a.logger.Error("diagram render failed", zap.Error(err))
		return f
	}
	f.Diagram = img
	return f
}

func (a *App) sample() (ForceSample, error) {
	sample, err := ParseSample(a.horizontal.Text, a.vertical.Text)
	if errors.Is(err, ErrInvalidInput) {
		a.logger.Debug("unparseable input",
			zap.String("horizontal", a.horizontal.Text),
			zap.String("vertical", a.vertical.Text))
	}
	return sample, err
}

func (a *App) setStatus(msg string) {
	a.status = msg
}
