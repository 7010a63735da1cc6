package web

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the pages and the page-facing API. The wish page is
// mounted both bare (query and fragment links) and with the two
// personalization path segments.
func (pg *Pages) RegisterRoutes(r chi.Router) {
	r.Get("/", pg.handleAuthoring)
	r.Get("/"+pg.cfg.PageName, pg.handleWish)
	r.Get("/"+pg.cfg.PageName+"/{sender}/{recipient}", pg.handleWish)
	r.Post("/api/resolve", pg.handleResolve)
	r.Post("/api/links", pg.handleLinks)
}
