package main

import (
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func exportFilename(t time.Time) string {
	return fmt.Sprintf("forces-%s.png", t.Format("20060102-150405"))
}

// exportDiagram writes the diagram for the current field contents as a PNG.
func (a *App) exportDiagram() {
	path, err := a.savePNG(time.Now())
	switch {
	case errors.Is(err, ErrInvalidInput):
		a.setStatus(invalidInputMessage)
	case err != nil:
		a.logger.Error("export failed", zap.Error(err))
		a.setStatus("Export failed: " + err.Error())
	default:
		a.logger.Info("diagram exported", zap.String("path", path))
		a.setStatus("Saved " + path)
	}
}

func (a *App) savePNG(t time.Time) (string, error) {
	sample, err := a.sample()
	if err != nil {
		return "", err
	}
	if a.renderer == nil {
		return "", errors.New("no renderer available")
	}
	img, err := a.renderer.Render(sample.Horizontal, sample.Vertical)
	if err != nil {
		return "", err
	}
	path, err := a.config.GetSavePath(exportFilename(t))
	if err != nil {
		return "", err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return "", errors.Wrapf(err, "save %s", path)
	}
	return path, nil
}
