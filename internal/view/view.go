// Package view renders the contact book page. Handlers assemble a Data
// value; markup decisions stay in the templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/zhouzirui/kontak/internal/model/contact"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Flash is a one-time status banner carried on a redirect.
type Flash struct {
	Type    string
	Message string
}

// Form carries a failed submission back onto the add form.
type Form struct {
	Errors map[string]string
	Old    contact.Fields
}

// EditForm carries the edit modal's target and values. Values come from
// the stored contact, or from the user's last rejected submission.
type EditForm struct {
	ID     string
	Values contact.Fields
	Errors map[string]string
}

// Data is everything one page render needs.
type Data struct {
	Contacts       []contact.Contact
	Total          int
	Query          string
	FilterCategory string
	Categories     []contact.Category
	Flash          *Flash
	AddForm        Form
	Edit           *EditForm
	CSRFToken      string
	Elapsed        string
}

// FormatElapsed renders a session duration as MM:SS.
func FormatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Renderer executes the embedded page template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates once.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page writes the contact book page for the given data.
func (r *Renderer) Page(w http.ResponseWriter, data Data) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return r.tmpl.ExecuteTemplate(w, "index.html.tmpl", data)
}
