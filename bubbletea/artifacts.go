package bubbletea

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/aethel"
)

// artifactWriter saves generated media under dir. File names start with
// the feature ID and a timestamp so repeated runs never overwrite.
type artifactWriter struct {
	dir string
	now func() time.Time
}

func (w artifactWriter) stamp() string {
	return w.now().Format("20060102-150405")
}

// soundscapeHeading names a saved soundscape with its length and peak level.
func soundscapeHeading(pcm []byte) string {
	samples := aethel.DecodePCM(pcm)
	d := aethel.PCMDuration(samples).Round(100 * time.Millisecond)
	return fmt.Sprintf("Soundscape saved (%s, peak %d%%)", d, int(aethel.PCMPeak(samples)*100))
}

// saveImages writes each image to its own file and returns the paths.
func (w artifactWriter) saveImages(featureID string, images []aethel.Image) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	stamp := w.stamp()
	paths := make([]string, 0, len(images))
	for i, img := range images {
		path := filepath.Join(w.dir, fmt.Sprintf("%s-%s-%d%s", featureID, stamp, i+1, imageExt(img.MIMEType)))
		if err := os.WriteFile(path, img.Data, 0o644); err != nil {
			return paths, fmt.Errorf("write image: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// saveAudio wraps pcm in a WAV container and returns the file path.
func (w artifactWriter) saveAudio(featureID string, pcm []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(w.dir, fmt.Sprintf("%s-%s.wav", featureID, w.stamp()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	if err := aethel.EncodeWAV(f, pcm); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close audio file: %w", err)
	}
	return path, nil
}

func imageExt(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
