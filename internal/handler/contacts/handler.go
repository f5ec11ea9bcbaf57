// Package contacts serves the contact book: form submissions on POST,
// the rendered page on GET.
package contacts

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/kontak/internal/model/contact"
	"github.com/zhouzirui/kontak/internal/session"
	"github.com/zhouzirui/kontak/internal/validate"
	"github.com/zhouzirui/kontak/internal/view"
	"github.com/zhouzirui/kontak/pkg/utils"
)

const (
	flashSuccess = "success"
	flashDanger  = "danger"
)

// Handler dispatches contact book requests against the session's state.
type Handler struct {
	sessions *session.Manager
	renderer *view.Renderer
}

// New creates the contact book handler.
func New(sessions *session.Manager, renderer *view.Renderer) *Handler {
	return &Handler{
		sessions: sessions,
		renderer: renderer,
	}
}

// RegisterRoutes mounts the page and its form endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/", h.handleAction)
}

// handleIndex renders the contact list with any filter, edit prefill,
// pending form errors and flash applied.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.Ensure(w, r)
	h.apply(w, r, h.readPage(state, r))
}

// handleAction dispatches a single mutating form submission. The CSRF
// check runs before any action; a mismatch refuses the mutation
// outright.
func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.Ensure(w, r)

	if err := r.ParseForm(); err != nil {
		h.apply(w, r, Redirect(utils.FlashURL(flashDanger, "Invalid form submission.")))
		return
	}

	if !state.VerifyCSRF(r.PostFormValue("csrf")) {
		h.apply(w, r, Redirect(utils.FlashURL(flashDanger, "Invalid CSRF token.")))
		return
	}

	var out Outcome
	switch r.PostFormValue("action") {
	case "add":
		out = h.add(state, r.PostForm)
	case "update":
		out = h.update(state, r.PostForm)
	case "delete":
		// Idempotent: deleting an unknown id still reads as success.
		state.Contacts.Delete(r.PostFormValue("id"))
		out = Redirect(utils.FlashURL(flashSuccess, "Contact deleted"))
	case "reset_session":
		h.sessions.Destroy(w, r)
		out = Redirect("/")
	default:
		// Unknown or missing actions fall through to the list view.
		out = Redirect("/")
	}

	h.apply(w, r, out)
}

func (h *Handler) add(state *session.State, form url.Values) Outcome {
	res := validate.Contact(form)
	if !res.Valid() {
		state.StashAddForm(res.Errors, res.Fields)
		return Redirect(utils.IndexURL(url.Values{"tab": {"form"}}))
	}

	state.Contacts.Add(res.Fields)
	return Redirect(utils.FlashURL(flashSuccess, "Contact added"))
}

func (h *Handler) update(state *session.State, form url.Values) Outcome {
	id := form.Get("id")

	res := validate.Contact(form)
	if !res.Valid() {
		state.StashEditForm(res.Errors, res.Fields, id)
		return Redirect(utils.IndexURL(url.Values{"edit": {id}}))
	}

	// A miss is deliberately silent: the contact may have been deleted
	// from another tab mid-edit.
	state.Contacts.Update(id, res.Fields)
	return Redirect(utils.FlashURL(flashSuccess, "Contact updated"))
}

// readPage assembles the view data for one GET.
func (h *Handler) readPage(state *session.State, r *http.Request) Outcome {
	query := r.URL.Query()
	search := strings.TrimSpace(query.Get("q"))
	category := query.Get("filterKategori")

	data := view.Data{
		Contacts:       state.Contacts.List(contact.Filter{Category: category, Search: search}),
		Total:          state.Contacts.Len(),
		Query:          search,
		FilterCategory: category,
		Categories:     contact.Categories(),
		CSRFToken:      state.CSRFToken,
		Elapsed:        view.FormatElapsed(state.Elapsed(time.Now().UTC())),
	}

	if flashType, msg := query.Get("flash"), query.Get("msg"); flashType != "" && msg != "" {
		data.Flash = &view.Flash{Type: flashType, Message: msg}
	}

	if fs := state.TakeAddForm(); fs != nil {
		data.AddForm = view.Form{Errors: fs.Errors, Old: fs.Old}
	}

	// Pending edit state is consumed even when the modal ends up not
	// shown, so a stale failure never resurfaces later.
	pendingEdit := state.TakeEditForm()
	if id := query.Get("edit"); id != "" {
		if c, ok := state.Contacts.FindByID(id); ok {
			edit := &view.EditForm{ID: c.ID, Values: c.Fields()}
			if pendingEdit != nil && pendingEdit.EditID == id {
				edit.Values = pendingEdit.Old
				edit.Errors = pendingEdit.Errors
			}
			data.Edit = edit
		}
	}

	return Render(data)
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request, out Outcome) {
	if err := out.Apply(w, r, h.renderer); err != nil {
		log.Printf("[contacts] render failed: %v", err)
	}
}
