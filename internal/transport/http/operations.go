package http

import (
	"net/http"

	"github.com/fleshka4/simplepool/internal/transport/http/dto"
	"github.com/fleshka4/simplepool/internal/transport/http/validate"
)

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.DepositRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}

	res, err := s.svc.Deposit(r.Context(), *req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := dto.DepositResponse{Credits: make([]dto.CreditResponse, 0, len(res.Credits)), Refused: amountString(res.Refused)}
	for _, c := range res.Credits {
		resp.Credits = append(resp.Credits, dto.CreditResponse{
			Ref:    c.Ref,
			Token:  c.Token.Hex(),
			Sender: c.Sender.Hex(),
			Amount: amountString(c.Amount),
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLoopbackTransfer(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.LoopbackTransferValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}

	txHash := s.sim.Receive(req.Token, req.From, req.Amount)
	s.writeJSON(w, http.StatusCreated, dto.LoopbackTransferResponse{TxHash: txHash.Hex()})
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.SwapRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	if err := authorize(r, req.Account); err != nil {
		s.fail(w, r, err)
		return
	}

	out, err := s.svc.Swap(r.Context(), *req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.SwapResponse{AmountOut: out.Dec()})
}

func (s *Server) handleAddLiquidity(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.AddLiquidityRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	if err := authorize(r, req.Account); err != nil {
		s.fail(w, r, err)
		return
	}

	share, err := s.svc.AddLiquidity(r.Context(), *req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.AddLiquidityResponse{Shares: share.Dec()})
}

func (s *Server) handleRemoveLiquidity(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.RemoveLiquidityRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	if err := authorize(r, req.Account); err != nil {
		s.fail(w, r, err)
		return
	}

	payouts, err := s.svc.RemoveLiquidity(r.Context(), *req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var resp dto.RemoveLiquidityResponse
	for i, token := range s.svc.Pool(r.Context()).Tokens {
		resp.Amounts = append(resp.Amounts, dto.TokenAmount{Token: token.Hex(), Amount: amountString(payouts[i])})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTransferShare(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.TransferShareRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	if err := authorize(r, req.From); err != nil {
		s.fail(w, r, err)
		return
	}

	if err := s.svc.TransferShare(r.Context(), *req); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
