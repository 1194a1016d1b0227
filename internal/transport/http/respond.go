package http

import (
	"encoding/json"
	"net/http"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/transport/http/dto"
	"github.com/fleshka4/simplepool/internal/withdrawal"
)

var (
	badRequest = []error{
		apperrors.ErrInvalidArgument,
		apperrors.ErrNotGetSameToken,
		apperrors.ErrTokenID,
		apperrors.ErrAmountInInvalid,
		apperrors.ErrInvalidAmount,
		apperrors.ErrTokenReserveInvalid,
		apperrors.ErrReserveInvalid,
		apperrors.ErrRatioMismatch,
		apperrors.ErrZeroShare,
		apperrors.ErrShareAmountNotEnough,
		apperrors.ErrTokenBalanceZero,
		apperrors.ErrTokenNotInPool,
		apperrors.ErrMinAmount,
	}
	notFound = []error{
		apperrors.ErrAccountNotFound,
		apperrors.ErrWithdrawalNotFound,
		apperrors.ErrTransferNotFound,
		apperrors.ErrNotFound,
	}
	conflict = []error{
		apperrors.ErrAccountRegistered,
		apperrors.ErrAlreadyInitialized,
		apperrors.ErrWithdrawalPending,
		apperrors.ErrWithdrawalSettled,
		apperrors.ErrTransferCredited,
	}
	integrity = []error{
		apperrors.ErrInvariant,
		apperrors.ErrOverflow,
		apperrors.ErrUnderflow,
		apperrors.ErrDivisionByZero,
		apperrors.ErrUnknownVersion,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrCallFailed):
		return http.StatusBadGateway
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case isAny(err, integrity):
		return http.StatusInternalServerError
	case isAny(err, badRequest):
		return http.StatusBadRequest
	case isAny(err, notFound):
		return http.StatusNotFound
	case isAny(err, conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("response write error", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, dto.ErrorResponse{Error: err.Error()})
}

// fail maps a service error to a response. Internal errors are logged and
// reported without detail.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		s.writeError(w, status, errors.New("internal error"))
		return
	}
	s.writeError(w, status, err)
}

func amountString(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}

func withdrawalResponse(req *withdrawal.Request) dto.WithdrawalResponse {
	resp := dto.WithdrawalResponse{
		ID:       req.ID.String(),
		Account:  req.Account.Hex(),
		Token:    req.Token.Hex(),
		Amount:   amountString(req.Amount),
		State:    string(req.State),
		IssuedAt: req.IssuedAt,
	}
	if !req.ResolvedAt.IsZero() {
		resolved := req.ResolvedAt
		resp.ResolvedAt = &resolved
	}
	return resp
}
