package http

import (
	"net/http"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// APIOption customises the article API.
type APIOption func(*API)

// WithLogger injects the API logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) APIOption {
	return func(api *API) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// WithTagQueryKey overrides the query parameter carrying tag filters
// (defaults to "tag").
func WithTagQueryKey(key string) APIOption {
	return func(api *API) {
		if key != "" {
			api.tagQueryKey = key
		}
	}
}

// API serves the article listing endpoints.
type API struct {
	articles    blog.Service
	logger      interfaces.Logger
	tagQueryKey string
}

// NewAPI constructs the article HTTP adapter on top of the listing service.
func NewAPI(articles blog.Service, opts ...APIOption) *API {
	api := &API{
		articles:    articles,
		logger:      logging.NoOp(),
		tagQueryKey: "tag",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// Register mounts the article routes under base on the supplied mux:
//
//	GET {base}            list (optionally filtered by ?tag=...&tag=...)
//	GET {base}/tags       tag summary over the unfiltered set
//	GET {base}/{link}     single article by link
func (api *API) Register(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "")
	mux.HandleFunc("GET "+root, api.handleList)
	mux.HandleFunc("GET "+joinPath(base, "tags"), api.handleTags)
	mux.HandleFunc("GET "+joinPath(base, "{link}"), api.handleGet)
}

func (api *API) handleList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.articles == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	// Absent, single, and repeated ?tag= values all flow through the same
	// normalization; no branching needed here.
	req := blog.ListRequest{Tags: r.URL.Query()[api.tagQueryKey]}

	vm, err := api.articles.List(r.Context(), req)
	if err != nil {
		api.logger.Error("articles.list failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vm)
}

func (api *API) handleTags(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.articles == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	tags, err := api.articles.Tags(r.Context())
	if err != nil {
		api.logger.Error("articles.tags failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (api *API) handleGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.articles == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	link := r.PathValue("link")
	record, err := api.articles.Get(r.Context(), link)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
