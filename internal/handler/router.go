package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/kontak/internal/handler/contacts"
	middlewarePkg "github.com/zhouzirui/kontak/internal/middleware"
	"github.com/zhouzirui/kontak/internal/session"
	"github.com/zhouzirui/kontak/internal/view"
)

// NewRouter wires HTTP routes to the contact book.
func NewRouter(sessions *session.Manager, renderer *view.Renderer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.NoCache)

	contactsHandler := contacts.New(sessions, renderer)
	contactsHandler.RegisterRoutes(r)

	return r
}
