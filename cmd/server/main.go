package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/config"
	"github.com/fleshka4/simplepool/internal/infra/tokenledger"
	"github.com/fleshka4/simplepool/internal/logging"
	"github.com/fleshka4/simplepool/internal/metrics"
	"github.com/fleshka4/simplepool/internal/pool"
	"github.com/fleshka4/simplepool/internal/service"
	"github.com/fleshka4/simplepool/internal/storage"
	transporthttp "github.com/fleshka4/simplepool/internal/transport/http"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logging.NewLogger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) (err error) {
	store, err := openStore(cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, errors.Wrap(store.Close(), "store.Close"))
	}()

	p, err := openPool(ctx, cfg.Pool, store, logger)
	if err != nil {
		return err
	}

	tokens, loopback, err := openTokenLedger(ctx, cfg.TokenLedger, p, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector := metrics.New(p, logger)
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collector,
	)
	go func() {
		if err := collector.Run(ctx); err != nil {
			logger.Error("metrics collector stopped", zap.Error(err))
		}
	}()

	svc := service.NewPoolService(p, tokens, logger)
	srv := transporthttp.NewServer(svc, cfg, reg, logger)
	if loopback != nil {
		srv.EnableLoopbackTransfers(loopback)
	}
	return errors.Wrap(srv.ListenAndServe(ctx, cfg.ListenAddr), "srv.ListenAndServe")
}

func openStore(cfg config.Storage, logger *zap.Logger) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverBadger:
		store, err := storage.OpenBadger(cfg.Path, logger)
		if err != nil {
			return nil, errors.Wrap(err, "storage.OpenBadger")
		}
		return store, nil
	default:
		logger.Warn("using in-memory storage, state is lost on restart")
		return storage.NewMemory(), nil
	}
}

// openPool loads the pool from the store and initialises it from config on
// first start.
func openPool(ctx context.Context, cfg config.Pool, store storage.Store, logger *zap.Logger) (*pool.Pool, error) {
	p, err := pool.Open(ctx, store, logger)
	switch {
	case err == nil:
		if stored := p.Tokens(); stored != cfg.TokenAddresses() {
			logger.Warn("configured pool tokens differ from the stored pool, using stored",
				zap.Stringers("stored", stored[:]))
		}
		return p, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, errors.Wrap(err, "pool.Open")
	}

	p, err = pool.New(ctx, pool.Params{
		Owner:       cfg.OwnerAddress(),
		Tokens:      cfg.TokenAddresses(),
		ExchangeFee: cfg.ExchangeFee,
	}, store, logger)
	if err != nil {
		return nil, errors.Wrap(err, "pool.New")
	}
	return p, nil
}

// openTokenLedger dials the configured chain. Without one it returns a
// loopback client, also as the second result so transfers can be simulated.
func openTokenLedger(ctx context.Context, cfg config.TokenLedger, p *pool.Pool, logger *zap.Logger) (tokenledger.Client, *tokenledger.Loopback, error) {
	if cfg.RPCURL == "" {
		logger.Warn("no token ledger configured, transfers are simulated through /loopback/transfers")
		loopback := tokenledger.NewLoopback(logger)
		return loopback, loopback, nil
	}

	client, err := tokenledger.Dial(ctx, cfg.RPCURL, tokenledger.Config{
		PrivateKey:     cfg.PrivateKey,
		GasLimit:       cfg.GasLimit,
		ReceiptTimeout: cfg.ReceiptTimeout,
		PollInterval:   cfg.PollInterval,
		CallTimeout:    cfg.CallTimeout,
		Confirmations:  cfg.Confirmations,
	}, logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "tokenledger.Dial")
	}

	checkCustody(ctx, client, p, logger)
	return client, nil, nil
}

// checkCustody warns when the pool key holds fewer tokens than the pool owes.
func checkCustody(ctx context.Context, client *tokenledger.ERC20, p *pool.Pool, logger *zap.Logger) {
	tokens := p.Tokens()
	held, err := client.BalancesOf(ctx, client.From(), tokens[:]...)
	if err != nil {
		logger.Warn("custody check skipped", zap.Error(err))
		return
	}
	owed, err := p.Liabilities()
	if err != nil {
		logger.Warn("custody check skipped", zap.Error(err))
		return
	}

	for i, token := range tokens {
		if held[i].Lt(owed[i]) {
			logger.Warn("custody below liabilities",
				zap.Stringer("token", token),
				zap.String("held", held[i].Dec()),
				zap.String("owed", owed[i].Dec()),
			)
		}
	}
}
