package http

import (
	"net/http"

	"github.com/fleshka4/simplepool/internal/transport/http/dto"
	"github.com/fleshka4/simplepool/internal/transport/http/validate"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	id, code, err := validate.RegisterRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}

	if err := s.svc.Register(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, dto.RegisterResponse{Account: id.Hex()})
}

func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	id, code, err := validate.AccountID(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}

	info, err := s.svc.Account(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := dto.AccountResponse{Account: info.ID.Hex(), Shares: amountString(info.Share)}
	for _, token := range s.svc.Pool(r.Context()).Tokens {
		resp.Balances = append(resp.Balances, dto.TokenAmount{Token: token.Hex(), Amount: amountString(info.Balances[token])})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	id, code, err := validate.AccountID(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}

	share, err := s.svc.Share(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.AmountResponse{Amount: share.Dec()})
}

func (s *Server) handleStorageBalance(w http.ResponseWriter, r *http.Request) {
	id, code, err := validate.AccountID(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}

	total, err := s.svc.StorageBalance(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.StorageBalanceResponse{Total: total})
}
