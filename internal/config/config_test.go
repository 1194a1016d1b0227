package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const (
	owner  = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	tokenA = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	tokenB = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

const minimal = `
pool:
  owner: ` + owner + `
  tokens: [` + tokenA + `, ` + tokenB + `]
  exchange_fee: 30
`

func TestDecode_Fallbacks(t *testing.T) {
	t.Parallel()

	cfg, err := Decode(strings.NewReader(minimal))
	require.NoError(t, err)

	require.Equal(t, ":1337", cfg.ListenAddr)
	require.Equal(t, 5*time.Second, cfg.GraceTimeout)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, DriverMemory, cfg.Storage.Driver)
	require.Equal(t, uint64(100_000), cfg.TokenLedger.GasLimit)
	require.Equal(t, 2*time.Minute, cfg.TokenLedger.ReceiptTimeout)
	require.Equal(t, 2*time.Second, cfg.TokenLedger.PollInterval)
	require.Equal(t, 5*time.Second, cfg.TokenLedger.CallTimeout)
	require.Zero(t, cfg.TokenLedger.Confirmations)
	require.Equal(t, 5*time.Minute, cfg.Auth.SignatureWindow)

	require.Equal(t, common.HexToAddress(owner), cfg.Pool.OwnerAddress())
	require.Equal(t, [2]common.Address{common.HexToAddress(tokenA), common.HexToAddress(tokenB)}, cfg.Pool.TokenAddresses())
	require.Equal(t, uint64(30), cfg.Pool.ExchangeFee)
}

func TestDecode_Full(t *testing.T) {
	t.Parallel()

	doc := minimal + `
listen_addr: 127.0.0.1:8080
shutdown_timeout: 10s
request_timeout: 1s
read_header_timeout: 3s
log_level: debug
storage:
  driver: badger
  path: /var/lib/pool
token_ledger:
  rpc_url: http://localhost:8545
  private_key: "0xabc"
  gas_limit: 60000
  receipt_timeout: 30s
  poll_interval: 500ms
  call_timeout: 3s
  confirmations: 12
auth:
  signature_window: 1m
`
	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	require.Equal(t, 10*time.Second, cfg.GraceTimeout)
	require.Equal(t, time.Second, cfg.RequestTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, Storage{Driver: DriverBadger, Path: "/var/lib/pool"}, cfg.Storage)
	require.Equal(t, TokenLedger{
		RPCURL:         "http://localhost:8545",
		PrivateKey:     "0xabc",
		GasLimit:       60_000,
		ReceiptTimeout: 30 * time.Second,
		PollInterval:   500 * time.Millisecond,
		CallTimeout:    3 * time.Second,
		Confirmations:  12,
	}, cfg.TokenLedger)
	require.Equal(t, Auth{SignatureWindow: time.Minute}, cfg.Auth)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr assert.ErrorAssertionFunc
		errs    int
	}{
		{
			name:    "empty document",
			doc:     "",
			wantErr: assert.Error,
			errs:    2,
		},
		{
			name:    "unknown field",
			doc:     minimal + "bogus: 1\n",
			wantErr: assert.Error,
			errs:    1,
		},
		{
			name: "same token twice",
			doc: `
pool:
  owner: ` + owner + `
  tokens: [` + tokenA + `, ` + strings.ToLower(tokenA) + `]
`,
			wantErr: assert.Error,
			errs:    1,
		},
		{
			name: "fee and addresses",
			doc: `
pool:
  owner: nobody
  tokens: [` + tokenA + `, 0x12]
  exchange_fee: 10000
`,
			wantErr: assert.Error,
			errs:    3,
		},
		{
			name:    "badger without path",
			doc:     minimal + "storage:\n  driver: badger\n",
			wantErr: assert.Error,
			errs:    1,
		},
		{
			name:    "unknown driver",
			doc:     minimal + "storage:\n  driver: postgres\n",
			wantErr: assert.Error,
			errs:    1,
		},
		{
			name:    "rpc without key",
			doc:     minimal + "token_ledger:\n  rpc_url: http://localhost:8545\n",
			wantErr: assert.Error,
			errs:    1,
		},
		{
			name:    "negative signature window",
			doc:     minimal + "auth:\n  signature_window: -1s\n",
			wantErr: assert.Error,
			errs:    1,
		},
		{
			name:    "bad log level",
			doc:     minimal + "log_level: loud\n",
			wantErr: assert.Error,
			errs:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(strings.NewReader(tt.doc))
			tt.wantErr(t, err)
			require.Len(t, multierr.Errors(err), tt.errs)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint64(30), cfg.Pool.ExchangeFee)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
