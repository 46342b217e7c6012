package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/assetbook/backend/internal/usecase/portfolio"
)

// --- Categories ---

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	category, err := s.categoryService.Create(r.Context(), accountIDFrom(r.Context()), portfolio.CreateCategoryInput{
		Name:        req.Name,
		TargetRatio: req.TargetRatio,
	})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newCategoryResponse(category), http.StatusCreated)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categoryService.ListByAccount(r.Context(), accountIDFrom(r.Context()))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newCategoryListResponse(categories), http.StatusOK)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := s.categoryService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newCategoryResponse(category), http.StatusOK)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	category, err := s.categoryService.Update(r.Context(), chi.URLParam(r, "id"), accountIDFrom(r.Context()), portfolio.UpdateCategoryInput{
		Name:        req.Name,
		TargetRatio: req.TargetRatio,
	})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newCategoryResponse(category), http.StatusOK)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.categoryService.Delete(r.Context(), chi.URLParam(r, "id"), accountIDFrom(r.Context())); err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, nil, http.StatusNoContent)
}

// --- Groupings ---

func (s *Server) createGrouping(w http.ResponseWriter, r *http.Request) {
	var req createGroupingRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	grouping, err := s.groupingService.Create(r.Context(), accountIDFrom(r.Context()), portfolio.CreateGroupingInput{
		AssetMasterID: req.AssetMasterID,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newGroupingResponse(grouping), http.StatusCreated)
}

func (s *Server) listGroupings(w http.ResponseWriter, r *http.Request) {
	groupings, err := s.groupingService.ListByAccount(r.Context(), accountIDFrom(r.Context()))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newGroupingListResponse(groupings), http.StatusOK)
}

func (s *Server) getGrouping(w http.ResponseWriter, r *http.Request) {
	grouping, err := s.groupingService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newGroupingResponse(grouping), http.StatusOK)
}

func (s *Server) updateGrouping(w http.ResponseWriter, r *http.Request) {
	var req updateGroupingRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	grouping, err := s.groupingService.Update(r.Context(), chi.URLParam(r, "id"), accountIDFrom(r.Context()), req.CategoryID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newGroupingResponse(grouping), http.StatusOK)
}

func (s *Server) deleteGrouping(w http.ResponseWriter, r *http.Request) {
	if err := s.groupingService.Delete(r.Context(), chi.URLParam(r, "id"), accountIDFrom(r.Context())); err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, nil, http.StatusNoContent)
}

// --- Holdings ---

func (s *Server) createHolding(w http.ResponseWriter, r *http.Request) {
	var req createHoldingRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	holding, err := s.holdingService.Create(r.Context(), accountIDFrom(r.Context()), portfolio.CreateHoldingInput{
		AssetMasterID: req.AssetMasterID,
		CurrentAmount: req.CurrentAmount,
	})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newHoldingResponse(holding), http.StatusCreated)
}

func (s *Server) listHoldings(w http.ResponseWriter, r *http.Request) {
	holdings, err := s.holdingService.ListByAccount(r.Context(), accountIDFrom(r.Context()))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newHoldingListResponse(holdings), http.StatusOK)
}

func (s *Server) getHolding(w http.ResponseWriter, r *http.Request) {
	holding, err := s.holdingService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newHoldingResponse(holding), http.StatusOK)
}

func (s *Server) updateHolding(w http.ResponseWriter, r *http.Request) {
	var req updateHoldingRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	holding, err := s.holdingService.Update(r.Context(), chi.URLParam(r, "id"), accountIDFrom(r.Context()), req.CurrentAmount)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newHoldingResponse(holding), http.StatusOK)
}

func (s *Server) deleteHolding(w http.ResponseWriter, r *http.Request) {
	if err := s.holdingService.Delete(r.Context(), chi.URLParam(r, "id"), accountIDFrom(r.Context())); err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, nil, http.StatusNoContent)
}
