package schematic

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultFontOnce sync.Once
	defaultFont     *text.FontSource
	defaultFontErr  error

	markFontPtr atomic.Pointer[text.FontSource]
)

func defaultFontSource() (*text.FontSource, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = text.NewFontSource(goregular.TTF)
		if defaultFontErr != nil {
			defaultFontErr = fmt.Errorf("schematic: parsing bundled mark font: %w", defaultFontErr)
		}
	})
	return defaultFont, defaultFontErr
}

// MarkFont returns the font source used to draw marks. Unless overridden
// with SetMarkFont, this is the bundled Go Regular face.
func MarkFont() (*text.FontSource, error) {
	if src := markFontPtr.Load(); src != nil {
		return src, nil
	}
	return defaultFontSource()
}

// SetMarkFont replaces the font used to draw marks. Passing nil restores
// the bundled default.
//
// SetMarkFont is safe for concurrent use.
func SetMarkFont(src *text.FontSource) {
	markFontPtr.Store(src)
}
