package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	account, err := s.accountService.Create(r.Context(), req.Username, req.Email)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newAccountResponse(account), http.StatusCreated)
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	all, err := s.accountService.List(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	out := make([]accountResponse, 0, len(all))
	for _, a := range all {
		out = append(out, newAccountResponse(a))
	}
	s.respond(w, r, out, http.StatusOK)
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	account, err := s.accountService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newAccountResponse(account), http.StatusOK)
}

func (s *Server) updateAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	account, err := s.accountService.Update(r.Context(), chi.URLParam(r, "id"), req.Username, req.Email)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, newAccountResponse(account), http.StatusOK)
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.accountService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.respond(w, r, nil, http.StatusNoContent)
}
