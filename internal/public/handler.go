// internal/public/handler.go
//
// Read-only API behind the visitor pages.
//
// These endpoints run on the restricted-credential pool; the elevated
// pool is reserved for admin paths.  Responses mirror what the pages
// need directly: flat lists with optional category filtering, FAQ
// keyword search, and the grouped downloads view with per-category
// section text.  Unrecognized categories are served as-is; grouping
// falls back to the raw category string rather than erroring.
package public

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/primenumber-jp/datasummit-site/internal/content/download"
	"github.com/primenumber-jp/datasummit-site/internal/content/faq"
	"github.com/primenumber-jp/datasummit-site/internal/content/form"
)

// Handler serves the public content API.
type Handler struct {
	downloads *download.Repository
	faqs      *faq.Repository
	forms     *form.Repository
	log       *zap.SugaredLogger
}

// NewHandler returns a Handler over the three read repositories.
func NewHandler(d *download.Repository, q *faq.Repository, f *form.Repository, log *zap.SugaredLogger) *Handler {
	return &Handler{downloads: d, faqs: q, forms: f, log: log}
}

// Routes mounts the public API on a fresh chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/downloads", h.listDownloads)
	r.Get("/downloads/sections", h.downloadSections)
	r.Get("/faqs", h.listFaqs)
	r.Get("/forms", h.listForms)
	return r
}

func (h *Handler) listDownloads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		items []download.Item
		err   error
	)
	if cat := r.URL.Query().Get("category"); cat != "" {
		items, err = h.downloads.ByCategory(ctx, cat)
	} else {
		items, err = h.downloads.List(ctx)
	}
	if err != nil {
		h.fail(w, "downloads", err)
		return
	}
	h.ok(w, items)
}

// downloadSection is one category block on the downloads page.
type downloadSection struct {
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Items       []download.Item `json:"items"`
}

func (h *Handler) downloadSections(w http.ResponseWriter, r *http.Request) {
	items, err := h.downloads.List(r.Context())
	if err != nil {
		h.fail(w, "downloads", err)
		return
	}

	// Group preserving first-seen category order.
	var order []string
	grouped := map[string][]download.Item{}
	for _, it := range items {
		if _, seen := grouped[it.Category]; !seen {
			order = append(order, it.Category)
		}
		grouped[it.Category] = append(grouped[it.Category], it)
	}

	sections := make([]downloadSection, 0, len(order))
	for _, cat := range order {
		name, desc := download.SectionText(cat)
		sections = append(sections, downloadSection{
			Category:    cat,
			Name:        name,
			Description: desc,
			Items:       grouped[cat],
		})
	}
	h.ok(w, sections)
}

func (h *Handler) listFaqs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		items []faq.Item
		err   error
	)
	switch {
	case r.URL.Query().Get("q") != "":
		items, err = h.faqs.Search(ctx, r.URL.Query().Get("q"))
	case r.URL.Query().Get("category") != "":
		items, err = h.faqs.ByCategory(ctx, r.URL.Query().Get("category"))
	default:
		items, err = h.faqs.List(ctx)
	}
	if err != nil {
		h.fail(w, "faqs", err)
		return
	}
	h.ok(w, items)
}

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		items []form.Item
		err   error
	)
	if cat := r.URL.Query().Get("category"); cat != "" {
		items, err = h.forms.ByCategory(ctx, cat)
	} else {
		items, err = h.forms.List(ctx)
	}
	if err != nil {
		h.fail(w, "forms", err)
		return
	}
	h.ok(w, items)
}

func (h *Handler) ok(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": v})
}

func (h *Handler) fail(w http.ResponseWriter, what string, err error) {
	h.log.Errorw("public api load failed", "what", what, "err", err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadGateway)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "content is temporarily unavailable, please retry later",
	})
}
