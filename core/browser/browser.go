package browser

import (
	"fmt"
	"io"

	pkgbrowser "github.com/pkg/browser"
	"go.uber.org/zap"
)

// Opener opens a URL in a user-facing browser.
type Opener interface {
	// Open asks the platform to display url.
	Open(url string) error
}

// OpenerFunc adapts a plain function to the Opener interface.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// System returns an Opener backed by the platform's default browser
// (xdg-open, open or rundll32 depending on the OS).
func System() Opener {
	return OpenerFunc(func(url string) error {
		if err := pkgbrowser.OpenURL(url); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
		return nil
	})
}

// Launch opens url with o and reports the outcome on w.
// Failures are logged and degrade to a manual instruction; they never
// reach the caller.
func Launch(w io.Writer, o Opener, url string, log *zap.Logger) {
	if err := o.Open(url); err != nil {
		log.Warn("Could not open browser", zap.String("url", url), zap.Error(err))
		fmt.Fprintln(w, "💡 Por favor, abre manualmente tu navegador")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintln(w, "🚀 Abriendo navegador automáticamente...")
	fmt.Fprintln(w)
}
