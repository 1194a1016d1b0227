package http

import (
	"net/http"

	"github.com/fleshka4/simplepool/internal/transport/http/dto"
	"github.com/fleshka4/simplepool/internal/transport/http/validate"
)

func (s *Server) handlePool(w http.ResponseWriter, r *http.Request) {
	info := s.svc.Pool(r.Context())

	resp := dto.PoolResponse{
		Owner:       info.Owner.Hex(),
		ExchangeFee: info.Fee,
		FeeDivisor:  info.FeeDivisor,
		TotalShares: amountString(info.TotalShares),
	}
	for i, token := range info.Tokens {
		resp.Tokens = append(resp.Tokens, token.Hex())
		resp.Reserves = append(resp.Reserves, dto.TokenAmount{Token: token.Hex(), Amount: amountString(info.Reserves[i])})
		resp.Volumes = append(resp.Volumes, dto.VolumeResponse{
			Token:  token.Hex(),
			Input:  amountString(info.Volumes[i].Input),
			Output: amountString(info.Volumes[i].Output),
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.QuoteRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		s.writeError(w, code, err)
		return
	}

	out, err := s.svc.Quote(r.Context(), *req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.AmountResponse{Amount: out.Dec()})
}
