package server

import (
	"fmt"
	"io"
	"strings"
)

const bannerWidth = 61

// PrintBanner writes the decorative startup banner with the active port and
// the local URLs. The output is for humans only.
func PrintBanner(w io.Writer, cfg Config) {
	fmt.Fprintln(w, "╔"+strings.Repeat("═", bannerWidth-2)+"╗")
	fmt.Fprintln(w, "║"+center("MaulePro Portal - Servidor Local", bannerWidth-2)+"║")
	fmt.Fprintln(w, "╚"+strings.Repeat("═", bannerWidth-2)+"╝")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "✅ Servidor iniciado en el puerto %d\n", cfg.Port)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🌐 Abre tu navegador en:")
	for _, u := range cfg.URLs() {
		fmt.Fprintf(w, "   %s\n", u)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "⚡ Presiona Ctrl+C para detener el servidor")
	fmt.Fprintln(w, strings.Repeat("═", bannerWidth))
	fmt.Fprintln(w)
}

// PrintShutdown writes the farewell message. It is the last console output.
func PrintShutdown(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🛑 Servidor detenido.")
	fmt.Fprintln(w, "   ¡Gracias por usar MaulePro Portal!")
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
