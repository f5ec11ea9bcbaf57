package contacts

import (
	"net/http"

	"github.com/zhouzirui/kontak/internal/view"
)

// Outcome is what one request resolves to: either a redirect or a
// rendered page. Handlers compute an Outcome; Apply performs it.
type Outcome struct {
	location string
	page     *view.Data
}

// Redirect resolves the request with a 303 to the given location.
func Redirect(location string) Outcome {
	return Outcome{location: location}
}

// Render resolves the request by rendering the page.
func Render(data view.Data) Outcome {
	return Outcome{page: &data}
}

// Apply writes the outcome to the response.
func (o Outcome) Apply(w http.ResponseWriter, r *http.Request, renderer *view.Renderer) error {
	if o.page != nil {
		return renderer.Page(w, *o.page)
	}
	http.Redirect(w, r, o.location, http.StatusSeeOther)
	return nil
}
