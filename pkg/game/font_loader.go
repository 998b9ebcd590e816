package game

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobolditalic"
)

// FontLoader loads the display font on a background goroutine.
//
// Until loading finishes, Face returns a bitmap fallback face so the first
// frames can already lay out and draw text. Ready is closed once loading
// has finished, whether it succeeded or not; callers re-measure text then.
//
// Face and Err are safe to call from the game loop while loading is in progress.
type FontLoader struct {
	mu       sync.RWMutex
	face     text.Face
	fallback text.Face
	err      error

	ready chan struct{}
	once  sync.Once
}

// NewFontLoader creates a loader whose Face is the fallback until Load completes.
func NewFontLoader() *FontLoader {
	return &FontLoader{
		fallback: text.NewGoXFace(basicfont.Face7x13),
		ready:    make(chan struct{}),
	}
}

// Load starts parsing the font at path asynchronously.
// An empty path loads the bundled Go Bold Italic.
// Only the first call has any effect.
//
// Parameters:
//   - path: TTF/OTF file path, or "" for the bundled face
//   - size: font size in pixels
func (l *FontLoader) Load(path string, size float64) {
	l.once.Do(func() {
		go l.load(path, size)
	})
}

func (l *FontLoader) load(path string, size float64) {
	defer close(l.ready)

	face, err := loadFace(path, size)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.err = err
		log.Printf("[FontLoader] Falling back to bitmap face: %v", err)
		return
	}
	l.face = face
	log.Printf("[FontLoader] Display font ready (size %.0f)", size)
}

// loadFace reads and parses a font; an empty path selects the bundled face.
func loadFace(path string, size float64) (*text.GoTextFace, error) {
	fontData := gobolditalic.TTF
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		fontData = data
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %q: %w", path, err)
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// Face returns the display face, or the fallback face while loading or after a failure.
func (l *FontLoader) Face() text.Face {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.face != nil {
		return l.face
	}
	return l.fallback
}

// Ready returns a channel that is closed when loading has finished.
func (l *FontLoader) Ready() <-chan struct{} {
	return l.ready
}

// Err returns the loading error, if any.
func (l *FontLoader) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}
