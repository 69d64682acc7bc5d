package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/models"
)

// objectRoute binds a URL segment under a library to a server resource.
type objectRoute struct {
	path      string
	resource  store.Resource
	keyParam  string
	keySep    string
	trashOnly bool
	writable  bool
}

var objectRoutes = []objectRoute{
	{path: "collections", resource: store.ResourceCollections, keyParam: "collectionKey", keySep: ",", writable: true},
	{path: "items", resource: store.ResourceItems, keyParam: "itemKey", keySep: ",", writable: true},
	{path: "items/trash", resource: store.ResourceItems, keyParam: "itemKey", keySep: ",", trashOnly: true},
	{path: "searches", resource: store.ResourceSearches, keyParam: "searchKey", keySep: ",", writable: true},
	{path: "tags", resource: store.ResourceTags, keyParam: "tag", keySep: " || "},
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.metrics.Middleware, withGZip, withAPIVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/keys", h.createKey)
		r.Handle("/metrics", h.metrics.Handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/users/{libraryID}", func(r chi.Router) {
			r.Use(h.library(models.LibraryPersonal))
			r.Get("/groups", h.listGroups)
			h.libraryRoutes(r)
		})

		r.Route("/groups/{libraryID}", func(r chi.Router) {
			r.Use(h.library(models.LibraryGroup))
			r.Get("/", h.getGroup)
			h.libraryRoutes(r)
		})
	})

	return router
}

func (h *Handler) libraryRoutes(r chi.Router) {
	for _, rt := range objectRoutes {
		r.Get("/"+rt.path, h.listObjects(rt))
		if rt.writable {
			r.Post("/"+rt.path, h.writeObjects(rt))
			r.Delete("/"+rt.path, h.deleteObjects(rt))
		}
	}
	r.Get("/deleted", h.listDeleted)
}
