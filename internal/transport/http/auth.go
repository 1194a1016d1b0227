package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/apperrors"
)

// SignatureHeader carries the caller's signature of the raw request body, an
// EIP-191 personal message signed with the account's key.
const SignatureHeader = "X-Signature"

const (
	defaultSignatureWindow = 5 * time.Minute
	maxSignedBodyBytes     = 1 << 16
)

type signerKey struct{}

// signerFrom returns the address that signed the request.
func signerFrom(ctx context.Context) (common.Address, bool) {
	signer, ok := ctx.Value(signerKey{}).(common.Address)
	return signer, ok
}

// replayGuard remembers accepted signed messages until their deadline passes.
type replayGuard struct {
	mu   sync.Mutex
	seen map[common.Hash]time.Time
}

func newReplayGuard() *replayGuard {
	return &replayGuard{seen: make(map[common.Hash]time.Time)}
}

// admit records the message and reports whether it was not seen before.
func (g *replayGuard) admit(message common.Hash, deadline, now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for h, d := range g.seen {
		if !now.Before(d) {
			delete(g.seen, h)
		}
	}
	if _, ok := g.seen[message]; ok {
		return false
	}
	g.seen[message] = deadline
	return true
}

// signed admits a request only with a fresh, valid signature of its body and
// passes the signer to next through the request context.
func (s *Server) signed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxSignedBodyBytes))
		if err != nil {
			s.writeError(w, http.StatusBadRequest, errors.Wrap(err, "bad request body"))
			return
		}

		signer, err := s.verify(r.Header.Get(SignatureHeader), body)
		if err != nil {
			s.logger.Warn("signature rejected", zap.String("path", r.URL.Path), zap.Error(err))
			s.writeError(w, http.StatusUnauthorized, err)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next(w, r.WithContext(context.WithValue(r.Context(), signerKey{}, signer)))
	}
}

func (s *Server) verify(header string, body []byte) (common.Address, error) {
	if header == "" {
		return common.Address{}, errors.Wrapf(apperrors.ErrUnauthorized, "missing %s header", SignatureHeader)
	}
	sig, err := hexutil.Decode(header)
	if err != nil || len(sig) != crypto.SignatureLength {
		return common.Address{}, errors.Wrap(apperrors.ErrUnauthorized, "malformed signature")
	}
	// wallets produce v as 27 or 28
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	hash := accounts.TextHash(body)
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, errors.Wrap(apperrors.ErrUnauthorized, "signature does not recover")
	}
	signer := crypto.PubkeyToAddress(*pub)

	var envelope struct {
		Deadline int64 `json:"deadline"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Deadline == 0 {
		return common.Address{}, errors.Wrap(apperrors.ErrUnauthorized, "missing deadline")
	}
	now := s.now()
	deadline := time.Unix(envelope.Deadline, 0)
	switch {
	case !now.Before(deadline):
		return common.Address{}, errors.Wrap(apperrors.ErrUnauthorized, "signature expired")
	case deadline.Sub(now) > s.signatureWindow:
		return common.Address{}, errors.Wrapf(apperrors.ErrUnauthorized, "deadline is more than %s ahead", s.signatureWindow)
	}

	// one use per signed message, whatever the signature encoding
	if !s.replays.admit(crypto.Keccak256Hash(signer.Bytes(), hash), deadline, now) {
		return common.Address{}, errors.Wrap(apperrors.ErrUnauthorized, "request already used")
	}
	return signer, nil
}

// authorize checks that the request was signed by the account it acts for.
func authorize(r *http.Request, account common.Address) error {
	signer, ok := signerFrom(r.Context())
	if !ok {
		return apperrors.ErrUnauthorized
	}
	if signer != account {
		return errors.Wrapf(apperrors.ErrForbidden, "signer %s, account %s", signer.Hex(), account.Hex())
	}
	return nil
}
