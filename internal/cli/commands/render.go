package commands

import (
	"fmt"
	"io"
	"strings"

	"Corexus/internal/frontend"
)

// renderView печатает страницу в терминал. Тело выводится как есть, Markdown читается и без разметки.
func renderView(w io.Writer, v *frontend.View) {
	fmt.Fprintln(w, v.Heading)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(v.Heading))))
	fmt.Fprintln(w, v.Body)
	if v.LoginForm {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run: corexus-cli login <email> <password>")
	}
	for _, a := range v.Actions {
		fmt.Fprintf(w, "\n[%s] corexus-cli %s\n", a.Label, a.Name)
	}
}
