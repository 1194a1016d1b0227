package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverBadger = "badger"
)

// feeDivisor mirrors dexmath.FeeDivisor; config stays free of domain imports.
const feeDivisor = 10_000

// Config holds application configuration loaded from file.
type Config struct {
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	LogLevel          string        `yaml:"log_level"`

	Pool        Pool        `yaml:"pool"`
	Storage     Storage     `yaml:"storage"`
	TokenLedger TokenLedger `yaml:"token_ledger"`
	Auth        Auth        `yaml:"auth"`
}

// Pool holds the parameters the pool is initialised with on first start.
type Pool struct {
	Owner       string   `yaml:"owner"`
	Tokens      []string `yaml:"tokens"`
	ExchangeFee uint64   `yaml:"exchange_fee"`
}

// Storage selects the state backend.
type Storage struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// TokenLedger configures the ERC-20 client. An empty RPCURL selects the
// loopback ledger.
type TokenLedger struct {
	RPCURL         string        `yaml:"rpc_url"`
	PrivateKey     string        `yaml:"private_key"`
	GasLimit       uint64        `yaml:"gas_limit"`
	ReceiptTimeout time.Duration `yaml:"receipt_timeout"`
	PollInterval   time.Duration `yaml:"poll_interval"`
	CallTimeout    time.Duration `yaml:"call_timeout"`
	Confirmations  uint64        `yaml:"confirmations"`
}

// Auth configures request signatures. A signed request must carry a deadline
// no further ahead than SignatureWindow.
type Auth struct {
	SignatureWindow time.Duration `yaml:"signature_window"`
}

// OwnerAddress returns the configured owner.
func (p Pool) OwnerAddress() common.Address {
	return common.HexToAddress(p.Owner)
}

// TokenAddresses returns the two configured pool tokens in order.
func (p Pool) TokenAddresses() [2]common.Address {
	var tokens [2]common.Address
	for i := 0; i < len(tokens) && i < len(p.Tokens); i++ {
		tokens[i] = common.HexToAddress(p.Tokens[i])
	}
	return tokens
}

// Load reads the config from a YAML file path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "os.Open")
	}
	defer f.Close() //nolint:errcheck

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses YAML from r, applies fallbacks and validates the result.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decoder.Decode")
	}

	cfg.applyFallbacks()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFallbacks() {
	const defaultTimeout = 5 * time.Second
	if c.ListenAddr == "" {
		c.ListenAddr = ":1337"
	}
	if c.GraceTimeout == 0 {
		c.GraceTimeout = defaultTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverMemory
	}
	if c.TokenLedger.GasLimit == 0 {
		c.TokenLedger.GasLimit = 100_000
	}
	if c.TokenLedger.ReceiptTimeout == 0 {
		c.TokenLedger.ReceiptTimeout = 2 * time.Minute
	}
	if c.TokenLedger.PollInterval == 0 {
		c.TokenLedger.PollInterval = 2 * time.Second
	}
	if c.TokenLedger.CallTimeout == 0 {
		c.TokenLedger.CallTimeout = defaultTimeout
	}
	if c.Auth.SignatureWindow == 0 {
		c.Auth.SignatureWindow = 5 * time.Minute
	}
}

// Validate reports every problem found in the config at once.
func (c Config) Validate() error {
	var err error

	if c.Pool.Owner == "" || !common.IsHexAddress(c.Pool.Owner) {
		err = multierr.Append(err, errors.New("pool.owner must be a hex address"))
	}
	if len(c.Pool.Tokens) != 2 {
		err = multierr.Append(err, errors.Errorf("pool.tokens must list 2 tokens, got %d", len(c.Pool.Tokens)))
	} else {
		for i, token := range c.Pool.Tokens {
			if !common.IsHexAddress(token) {
				err = multierr.Append(err, errors.Errorf("pool.tokens[%d] must be a hex address", i))
			}
		}
		if strings.EqualFold(c.Pool.Tokens[0], c.Pool.Tokens[1]) {
			err = multierr.Append(err, errors.New("pool.tokens must be distinct"))
		}
	}
	if c.Pool.ExchangeFee >= feeDivisor {
		err = multierr.Append(err, errors.Errorf("pool.exchange_fee must be below %d", feeDivisor))
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverBadger:
		if c.Storage.Path == "" {
			err = multierr.Append(err, errors.New("storage.path is required for the badger driver"))
		}
	default:
		err = multierr.Append(err, errors.Errorf("unknown storage.driver %q", c.Storage.Driver))
	}

	if c.TokenLedger.RPCURL != "" && c.TokenLedger.PrivateKey == "" {
		err = multierr.Append(err, errors.New("token_ledger.private_key is required with rpc_url"))
	}

	if c.Auth.SignatureWindow < 0 {
		err = multierr.Append(err, errors.New("auth.signature_window must be positive"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, errors.Errorf("unknown log_level %q", c.LogLevel))
	}

	return err
}
