package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"glyph-animator/internal/animator"
)

// ManifestEntry represents one rendered tick in the output manifest.
type ManifestEntry struct {
	Tick       int     `json:"tick"`
	Frame      int     `json:"frame"`
	ElapsedSec float64 `json:"elapsed_sec"`
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
	Rotation   float64 `json:"rotation"`
	ScaleX     float64 `json:"scale_x"`
	ScaleY     float64 `json:"scale_y"`
	Image      string  `json:"image,omitempty"`
}

// WriteManifest writes manifest.json describing frames, creating its
// directory if needed. Frames whose result failed are listed without an image.
func WriteManifest(path string, frames []animator.Frame, results []Result) error {
	entries := make([]ManifestEntry, len(frames))
	for i, f := range frames {
		entries[i] = ManifestEntry{
			Tick:       f.Tick,
			Frame:      f.Number,
			ElapsedSec: f.Elapsed.Seconds(),
			TranslateX: f.Preset.TranslateX,
			TranslateY: f.Preset.TranslateY,
			Rotation:   f.Preset.Rotation,
			ScaleX:     f.Preset.ScaleX,
			ScaleY:     f.Preset.ScaleY,
		}
		if i < len(results) && results[i].Success {
			entries[i].Image = results[i].File
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: manifest dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("export: write manifest: %w", err)
	}
	return nil
}
