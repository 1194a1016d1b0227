package http

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/config"
	"github.com/fleshka4/simplepool/internal/service"
)

// TransferSimulator records transfers into the pool's custody without a chain.
type TransferSimulator interface {
	Receive(token, from common.Address, amount *uint256.Int) common.Hash
}

// Server represents the HTTP transport layer.
type Server struct {
	svc    service.Service
	sim    TransferSimulator
	mux    *http.ServeMux
	logger *zap.Logger

	graceTimeout      time.Duration
	readHeaderTimeout time.Duration
	requestTimeout    time.Duration

	signatureWindow time.Duration
	replays         *replayGuard
	now             func() time.Time
}

// NewServer creates a new HTTP server with registered routes. Metrics are
// served from gatherer, or from the default registry when it is nil.
//
// Routes that spend an account's balance or shares require a signature of
// the account's key, see SignatureHeader.
func NewServer(svc service.Service, cfg config.Config, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	s := &Server{
		svc:    svc,
		mux:    http.NewServeMux(),
		logger: logger.With(zap.String("component", "http")),

		graceTimeout:      cfg.GraceTimeout,
		readHeaderTimeout: cfg.ReadHeaderTimeout,
		requestTimeout:    cfg.RequestTimeout,

		signatureWindow: cfg.Auth.SignatureWindow,
		replays:         newReplayGuard(),
		now:             time.Now,
	}
	if s.signatureWindow <= 0 {
		s.signatureWindow = defaultSignatureWindow
	}

	s.mux.HandleFunc("GET /ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("pong")); err != nil {
			s.logger.Warn("ping write error", zap.Error(err))
		}
	})
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	s.mux.HandleFunc("GET /pool", s.handlePool)
	s.mux.HandleFunc("GET /quote", s.handleQuote)

	s.mux.HandleFunc("POST /accounts", s.handleRegister)
	s.mux.HandleFunc("GET /accounts/{id}", s.handleAccount)
	s.mux.HandleFunc("GET /accounts/{id}/share", s.handleShare)
	s.mux.HandleFunc("GET /accounts/{id}/storage", s.handleStorageBalance)

	s.mux.HandleFunc("POST /deposits", s.handleDeposit)
	s.mux.HandleFunc("POST /swap", s.signed(s.handleSwap))
	s.mux.HandleFunc("POST /liquidity/add", s.signed(s.handleAddLiquidity))
	s.mux.HandleFunc("POST /liquidity/remove", s.signed(s.handleRemoveLiquidity))
	s.mux.HandleFunc("POST /shares/transfer", s.signed(s.handleTransferShare))

	s.mux.HandleFunc("POST /withdrawals", s.signed(s.handleWithdraw))
	s.mux.HandleFunc("GET /withdrawals/{id}", s.handleWithdrawal)

	return s
}

// EnableLoopbackTransfers serves POST /loopback/transfers, which records a
// simulated transfer into the pool's custody. It is meant for runs without a
// chain.
func (s *Server) EnableLoopbackTransfers(sim TransferSimulator) {
	s.sim = sim
	s.mux.HandleFunc("POST /loopback/transfers", s.handleLoopbackTransfer)
}

// Handler returns the routes wrapped in the server middleware.
func (s *Server) Handler() http.Handler {
	return s.logMiddleware(s.timeoutMiddleware(s.mux))
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "net.Listen")
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "srv.Serve")
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.graceTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "srv.Shutdown")
	}
	s.logger.Info("server stopped gracefully")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logMiddleware logs each HTTP request and the time taken to process it.
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.String()),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.requestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
