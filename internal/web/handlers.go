// Package web serves the authoring and wish pages and the JSON API the
// pages drive: payload resolution, link minting, and defaults persistence.
package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/electrical-elites/wishlink/internal/config"
	"github.com/electrical-elites/wishlink/internal/defaults"
	"github.com/electrical-elites/wishlink/internal/greeting"
	"github.com/electrical-elites/wishlink/internal/link"
	"github.com/electrical-elites/wishlink/internal/payload"
	"github.com/electrical-elites/wishlink/internal/resolve"
)

// Pages wires the page handlers to their collaborators.
type Pages struct {
	cfg      *config.Config
	resolver *resolve.Resolver
	builder  *link.Builder
	store    *defaults.Store
}

// New creates the page controller.
func New(cfg *config.Config, resolver *resolve.Resolver, builder *link.Builder, store *defaults.Store) *Pages {
	return &Pages{cfg: cfg, resolver: resolver, builder: builder, store: store}
}

// authoringData feeds the authoring template.
type authoringData struct {
	GroupName  string
	Greeting   string
	GroupPhoto string
	AudioURL   string
	Sender     string
	PageName   string
}

// wishData feeds the wish template. Resolved is false when only the page
// itself can see the payload (fragment links), in which case the page calls
// back into /api/resolve.
type wishData struct {
	Resolved   bool
	Title      string
	Recipient  string
	Greeting   string
	GroupPhoto string
	AudioURL   string
	Boot       map[string]any
}

func (pg *Pages) handleAuthoring(w http.ResponseWriter, r *http.Request) {
	p, err := pg.resolver.Resolve(r.Context(), r.URL)
	if err != nil {
		log.Printf("web: resolving authoring view: %v", err)
		p = pg.cfg.Defaults()
	}

	data := authoringData{
		GroupName:  p.GroupName,
		Greeting:   p.Greeting,
		GroupPhoto: p.GroupPhoto,
		AudioURL:   p.AudioURL,
		Sender:     p.Sender,
		PageName:   pg.cfg.PageName,
	}
	renderPage(w, authoringPage, data)
}

func (pg *Pages) handleWish(w http.ResponseWriter, r *http.Request) {
	p, err := pg.resolver.Resolve(r.Context(), r.URL)
	if err != nil {
		log.Printf("web: resolving wish view: %v", err)
		p = pg.cfg.Defaults()
	}

	data := wishData{
		Resolved:   p.HasRecipient(),
		Title:      p.GroupName,
		GroupPhoto: p.GroupPhoto,
		AudioURL:   p.AudioURL,
		Boot:       map[string]any{"resolved": p.HasRecipient()},
	}
	if p.HasRecipient() {
		data.Recipient = p.Recipient
		data.Greeting = greeting.Compose(p.Greeting, p.Sender, p.GroupName)
	}
	renderPage(w, wishPage, data)
}

// resolveRequest is the body of POST /api/resolve: the page's full
// location, fragment included.
type resolveRequest struct {
	URL string `json:"url"`
}

// resolveResponse is the effective state for a page to render.
type resolveResponse struct {
	RecipientView bool   `json:"recipient_view"`
	Recipient     string `json:"recipient,omitempty"`
	Sender        string `json:"sender,omitempty"`
	Title         string `json:"title"`
	Greeting      string `json:"greeting"`
	GroupPhoto    string `json:"group_photo"`
	AudioURL      string `json:"audio_url"`
}

func (pg *Pages) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := url.Parse(req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid url")
		return
	}

	p, err := pg.resolver.Resolve(r.Context(), u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := resolveResponse{
		RecipientView: p.HasRecipient(),
		Recipient:     p.Recipient,
		Sender:        p.Sender,
		Title:         p.GroupName,
		Greeting:      p.Greeting,
		GroupPhoto:    p.GroupPhoto,
		AudioURL:      p.AudioURL,
	}
	if resp.RecipientView {
		resp.Greeting = greeting.Compose(p.Greeting, p.Sender, p.GroupName)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// linkRequest carries the authoring fields for link creation. Field names
// match the fragment wire format.
type linkRequest struct {
	GroupName  string `json:"groupName"`
	Greeting   string `json:"greeting"`
	GroupPhoto string `json:"groupPhoto"`
	AudioURL   string `json:"audioUrl"`
	Recipient  string `json:"recipient"`
	Sender     string `json:"sender"`
}

func (pg *Pages) handleLinks(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	recipient := strings.TrimSpace(req.Recipient)
	if recipient == "" {
		// The requested action aborts here: no link, no defaults write.
		writeError(w, http.StatusBadRequest, "recipient is required")
		return
	}

	p := payload.Overlay(pg.cfg.Defaults(), payload.Payload{
		GroupName:  req.GroupName,
		Greeting:   req.Greeting,
		GroupPhoto: req.GroupPhoto,
		AudioURL:   req.AudioURL,
	})
	p.Recipient = recipient
	p.Sender = strings.TrimSpace(req.Sender)

	links := pg.builder.Build(pg.baseURL(r), p)

	if err := pg.store.Save(r.Context(), defaults.Record{
		GroupName:  req.GroupName,
		Greeting:   req.Greeting,
		GroupPhoto: req.GroupPhoto,
		AudioURL:   req.AudioURL,
		Sender:     req.Sender,
	}); err != nil {
		// The links are already minted; a failed defaults write should not
		// withhold them.
		log.Printf("web: saving defaults after link creation: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(links)
}

// baseURL picks the base location links are built against: the configured
// public URL when set, the request's own scheme and host otherwise.
func (pg *Pages) baseURL(r *http.Request) *url.URL {
	if pg.cfg.BaseURL != "" {
		if u, err := url.Parse(pg.cfg.BaseURL); err == nil {
			return u
		}
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return &url.URL{Scheme: scheme, Host: r.Host, Path: "/"}
}

// writeError emits a JSON error body. Marshalling keeps messages with
// quotes or backslashes valid.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// renderPage executes a template into a buffer first so a template error
// yields a clean 500 instead of a half-written page.
func renderPage(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Printf("web: executing %s template: %v", tmpl.Name(), err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
