// Package fakeadmin serves in-memory stand-ins for the config admin backend
// and the search cluster. Tests and local runs point the SDK at them.
package fakeadmin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/searchplatform/searchadmin/client"
	"github.com/searchplatform/searchadmin/internal/fakeadmin/respond"
)

// Backend fakes the /api/v1 sources and objects endpoints.
type Backend struct {
	sources *store[client.Source]
	objects *store[client.SearchObject]
}

// NewBackend returns an empty backend.
func NewBackend() *Backend {
	return &Backend{
		sources: newStore[client.Source]("Source"),
		objects: newStore[client.SearchObject]("SearchObject"),
	}
}

// Handler routes the backend API under /api/v1. Paths are matched encoded
// so ids containing '/' round-trip.
func (b *Backend) Handler() http.Handler {
	router := mux.NewRouter().UseEncodedPath()
	router.Use(recoverMiddleware, logMiddleware("backend"))

	sources := client.APIBasePath + "/sources"
	router.HandleFunc(sources, b.listSources).Methods("GET")
	router.HandleFunc(sources, b.createSource).Methods("POST")
	router.HandleFunc(sources+"/{sourceId}", b.getSource).Methods("GET")
	router.HandleFunc(sources+"/{sourceId}", b.updateSource).Methods("PUT")
	router.HandleFunc(sources+"/{sourceId}", b.deleteSource).Methods("DELETE")

	objects := client.APIBasePath + "/objects"
	router.HandleFunc(objects, b.listObjects).Methods("GET")
	router.HandleFunc(objects, b.createObject).Methods("POST")
	router.HandleFunc(objects+"/{objectId}", b.getObject).Methods("GET")
	router.HandleFunc(objects+"/{objectId}", b.updateObject).Methods("PUT")
	router.HandleFunc(objects+"/{objectId}", b.deleteObject).Methods("DELETE")

	return router
}

// pathVar returns the decoded route variable key.
func pathVar(r *http.Request, key string) string {
	raw := mux.Vars(r)[key]
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// ---------- sources ----------

// listSources GET /api/v1/sources
func (b *Backend) listSources(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, b.sources.list(nil))
}

// createSource POST /api/v1/sources
func (b *Backend) createSource(w http.ResponseWriter, r *http.Request) {
	var src client.Source
	if err := json.NewDecoder(r.Body).Decode(&src); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := b.sources.create(src.SourceID, src); err != nil {
		log.Warn().Err(err).Msg("Failed to create source")
		respond.WriteBadRequest(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, src)
}

// getSource GET /api/v1/sources/{sourceId}
func (b *Backend) getSource(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "sourceId")
	src, ok := b.sources.get(id)
	if !ok {
		respond.WriteNotFound(w, "Source not found: "+id)
		return
	}
	respond.WriteJSON(w, http.StatusOK, src)
}

// updateSource PUT /api/v1/sources/{sourceId}. The path id wins over the body's.
func (b *Backend) updateSource(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "sourceId")
	var src client.Source
	if err := json.NewDecoder(r.Body).Decode(&src); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	src.SourceID = id
	if err := b.sources.update(id, src); err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, src)
}

// deleteSource DELETE /api/v1/sources/{sourceId}
func (b *Backend) deleteSource(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "sourceId")
	if !b.sources.delete(id) {
		respond.WriteNotFound(w, "Source not found: "+id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------- objects ----------

// listObjects GET /api/v1/objects[?appKey=]
func (b *Backend) listObjects(w http.ResponseWriter, r *http.Request) {
	var keep func(client.SearchObject) bool
	if key := r.URL.Query().Get("appKey"); key != "" {
		keep = func(o client.SearchObject) bool { return o.AppKey == key }
	}
	respond.WriteJSON(w, http.StatusOK, b.objects.list(keep))
}

// createObject POST /api/v1/objects
func (b *Backend) createObject(w http.ResponseWriter, r *http.Request) {
	var obj client.SearchObject
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if obj.SourceID != "" {
		if _, ok := b.sources.get(obj.SourceID); !ok {
			log.Warn().Str("object_id", obj.ObjectID).Str("source_id", obj.SourceID).
				Msg("Creating object with non-existent source reference")
		}
	}
	if err := b.objects.create(obj.ObjectID, obj); err != nil {
		log.Warn().Err(err).Msg("Failed to create object")
		respond.WriteBadRequest(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, obj)
}

// getObject GET /api/v1/objects/{objectId}
func (b *Backend) getObject(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "objectId")
	obj, ok := b.objects.get(id)
	if !ok {
		respond.WriteNotFound(w, "SearchObject not found: "+id)
		return
	}
	respond.WriteJSON(w, http.StatusOK, obj)
}

// updateObject PUT /api/v1/objects/{objectId}
func (b *Backend) updateObject(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "objectId")
	var obj client.SearchObject
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	obj.ObjectID = id
	if err := b.objects.update(id, obj); err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, obj)
}

// deleteObject DELETE /api/v1/objects/{objectId}
func (b *Backend) deleteObject(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "objectId")
	if !b.objects.delete(id) {
		respond.WriteNotFound(w, "SearchObject not found: "+id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errMissing):
		respond.WriteNotFound(w, err.Error())
	default:
		respond.WriteBadRequest(w, err.Error())
	}
}
