package http

import (
	"net/http"

	"github.com/fleshka4/simplepool/internal/transport/http/validate"
)

// handleWithdraw runs the whole withdrawal. A failed token transfer answers
// 502 with the failed request so the caller can see its id.
func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.WithdrawRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	if err := authorize(r, req.Account); err != nil {
		s.fail(w, r, err)
		return
	}

	done, err := s.svc.Withdraw(r.Context(), *req)
	if err != nil {
		if done != nil {
			s.writeJSON(w, statusOf(err), withdrawalResponse(done))
			return
		}
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, withdrawalResponse(done))
}

func (s *Server) handleWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, code, err := validate.WithdrawalID(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}

	req, err := s.svc.Withdrawal(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, withdrawalResponse(req))
}
