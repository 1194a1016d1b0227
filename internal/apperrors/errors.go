package apperrors

import "github.com/pkg/errors"

// Invalid arguments. The operation is rejected before any state is touched.
var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotGetSameToken is returned when a quote or swap names the same token on both legs.
	ErrNotGetSameToken = errors.New("ERR_NOT_GET_SAME_TOKEN")

	// ErrTokenID is returned when add-liquidity names the same token twice.
	ErrTokenID = errors.New("ERR_TOKEN_ID")

	// ErrAmountInInvalid is returned when a quote is requested for a zero input.
	ErrAmountInInvalid = errors.New("ERR_AMOUNT_IN_INVALID")

	// ErrInvalidAmount is returned for zero amounts and for debits above the
	// tracked balance.
	ErrInvalidAmount = errors.New("ERR_INVALID_AMOUNT")

	// ErrTokenReserveInvalid is returned when a quote hits an empty reserve.
	ErrTokenReserveInvalid = errors.New("ERR_TOKEN_RESERVE_INVALID")

	// ErrReserveInvalid is returned when liquidity is added to a pool that has
	// outstanding shares but an empty reserve.
	ErrReserveInvalid = errors.New("ERR_RESERVE_INVALID")

	// ErrRatioMismatch is returned when added amounts deviate from the reserve ratio.
	ErrRatioMismatch = errors.New("x / y != dx / dy")

	// ErrZeroShare is returned when a deposit would mint no shares.
	ErrZeroShare = errors.New("share would be zero")

	// ErrShareAmountNotEnough is returned when an account burns or transfers more
	// shares than it holds.
	ErrShareAmountNotEnough = errors.New("ERR_SHARE_AMOUNT_NOT_ENOUGH")

	// ErrTokenBalanceZero is returned when withdrawing from an empty balance.
	ErrTokenBalanceZero = errors.New("ERR_TOKEN_BALANCE_EQUAL_ZERO")
)

// ErrMinAmount is returned when the quoted output is below the caller's minimum.
var ErrMinAmount = errors.New("ERR_MIN_AMOUNT")

// Lookups that must succeed.
var (
	// ErrAccountNotFound is returned when an identity has not been registered.
	ErrAccountNotFound = errors.New("account not registered")

	// ErrTokenNotInPool is returned for a token id that is not one of the pool's two tokens.
	ErrTokenNotInPool = errors.New("ERR_FT_CONTRACT_NOT_IN_POOL")

	// ErrWithdrawalNotFound is returned for an unknown withdrawal request id.
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")

	// ErrTransferNotFound is returned when a deposit names a transaction that
	// moved no pool token to the pool's custody.
	ErrTransferNotFound = errors.New("token transfer not found")

	// ErrNotFound is returned by storage when a key is absent.
	ErrNotFound = errors.New("not found")
)

// Conflicts with existing state.
var (
	// ErrAccountRegistered is returned when registering an identity twice.
	ErrAccountRegistered = errors.New("ERR_ACCOUNT_REGISTED")

	// ErrAlreadyInitialized is returned when a pool is created over existing pool state.
	ErrAlreadyInitialized = errors.New("pool already initialized")

	// ErrWithdrawalPending is returned when a withdrawal for the same account and
	// token is still waiting for its external transfer.
	ErrWithdrawalPending = errors.New("withdrawal already pending")

	// ErrWithdrawalSettled is returned when a withdrawal request is completed twice.
	ErrWithdrawalSettled = errors.New("withdrawal already settled")

	// ErrTransferCredited is returned when a token transfer is credited twice.
	ErrTransferCredited = errors.New("transfer already credited")
)

// Caller authentication.
var (
	// ErrUnauthorized is returned when a request carries no valid signature.
	ErrUnauthorized = errors.New("invalid signature")

	// ErrForbidden is returned when the signer is not the account the request acts for.
	ErrForbidden = errors.New("signer does not own the account")
)

// State integrity failures. These indicate a logic defect and are never clamped.
var (
	// ErrInvariant is returned when an operation would break pool accounting.
	ErrInvariant = errors.New("pool invariant violated")

	// ErrOverflow is returned when a value does not fit the amount domain.
	ErrOverflow = errors.New("amount overflow")

	// ErrUnderflow is returned when a subtraction would go below zero.
	ErrUnderflow = errors.New("amount underflow")

	// ErrDivisionByZero is returned by wide arithmetic on a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownVersion is returned when a persisted record has an unsupported version.
	ErrUnknownVersion = errors.New("unknown record version")
)

// ErrCallFailed is returned when the external transfer of a withdrawal did not succeed.
var ErrCallFailed = errors.New("ERR_CALL_FAILED")
