package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) createCatalogAsset(w http.ResponseWriter, r *http.Request) {
	var req catalogAssetRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	asset, err := s.catalogService.Create(r.Context(), req.Name, req.TickerSymbol)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newCatalogAssetResponse(asset), http.StatusCreated)
}

func (s *Server) listCatalogAssets(w http.ResponseWriter, r *http.Request) {
	all, err := s.catalogService.List(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	out := make([]catalogAssetResponse, 0, len(all))
	for _, a := range all {
		out = append(out, newCatalogAssetResponse(a))
	}
	s.respond(w, r, out, http.StatusOK)
}

func (s *Server) getCatalogAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := s.catalogService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newCatalogAssetResponse(asset), http.StatusOK)
}

func (s *Server) updateCatalogAsset(w http.ResponseWriter, r *http.Request) {
	var req catalogAssetRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	asset, err := s.catalogService.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.TickerSymbol)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newCatalogAssetResponse(asset), http.StatusOK)
}

func (s *Server) deleteCatalogAsset(w http.ResponseWriter, r *http.Request) {
	if err := s.catalogService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, nil, http.StatusNoContent)
}
