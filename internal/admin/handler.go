// internal/admin/handler.go
//
// HTTP surface of the dashboard.
//
// Routes (mounted under /admin/api, behind RequireKey):
//
//	GET    /{tab}               load tab collection
//	POST   /{tab}               create
//	PUT    /{tab}/{id}          update
//	DELETE /{tab}/{id}?confirm=yes  delete (gate enforced)
//	GET    /{tab}/export        CSV/XLSX of the in-memory collection
//
// Every response is a JSON envelope: {"data": …} or {"error": "…"}.
// Store failures map to 502 so the browser can tell "store down" from
// "you sent garbage" (400/404).
package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/primenumber-jp/datasummit-site/internal/content"
)

// Handler serves the dashboard over HTTP.
type Handler struct {
	dash *Dashboard
}

// NewHandler returns a Handler over dash.
func NewHandler(dash *Dashboard) *Handler { return &Handler{dash: dash} }

// Routes mounts the dashboard API on a fresh chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{tab}", h.list)
	r.Post("/{tab}", h.create)
	r.Get("/{tab}/export", h.export)
	r.Put("/{tab}/{id}", h.update)
	r.Delete("/{tab}/{id}", h.delete)
	return r
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	tab := Tab(chi.URLParam(r, "tab"))
	list, err := h.dash.SwitchTab(r.Context(), tab)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	tab := Tab(chi.URLParam(r, "tab"))
	res := h.dash.Resource(tab)
	if res == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown tab"})
		return
	}
	rec, err := res.Decode(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed body: " + err.Error()})
		return
	}
	created, err := h.dash.SubmitCreate(r.Context(), tab, rec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, created)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	tab := Tab(chi.URLParam(r, "tab"))
	id := chi.URLParam(r, "id")
	res := h.dash.Resource(tab)
	if res == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown tab"})
		return
	}
	rec, err := res.Decode(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed body: " + err.Error()})
		return
	}
	updated, err := h.dash.SubmitUpdate(r.Context(), tab, id, rec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, updated)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	tab := Tab(chi.URLParam(r, "tab"))
	id := chi.URLParam(r, "id")

	// The browser's yes/no prompt is answered by sending confirm=yes.
	confirmed := r.URL.Query().Get("confirm") == "yes" ||
		r.Header.Get("X-Confirm-Delete") == "yes"

	if err := h.dash.Delete(r.Context(), tab, id, confirmed); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	tab := Tab(chi.URLParam(r, "tab"))
	format := r.URL.Query().Get("format")

	filename, data, err := h.dash.Export(tab, format)
	if err != nil {
		writeError(w, err)
		return
	}
	if name := safeFilename(r.URL.Query().Get("filename")); name != "" {
		filename = name
	}

	switch format {
	case "xlsx":
		w.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	default:
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// safeFilename reduces a caller-supplied download name to characters
// that survive a quoted Content-Disposition value unmangled.  Anything
// else, quotes included, would break the name in the browser's save
// dialog.  Returns "" when nothing usable remains.
func safeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), ".")
}

//
// response helpers
//

func writeData(w http.ResponseWriter, code int, v any) {
	writeJSON(w, code, map[string]any{"data": v})
}

func writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	var serr *content.StoreError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
	case errors.Is(err, ErrConfirmationRequired):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "delete not confirmed; pass confirm=yes"})
	case errors.Is(err, content.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
	case errors.Is(err, content.ErrCreateNotEchoed):
		// Documented inconsistency window: the row may exist remotely
		// even though the action is reported as failed.
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	case errors.As(err, &serr):
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": serr.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
