package host

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store/cachekv"
	"cosmossdk.io/store/dbadapter"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/satlayer/satlayer-vesting/cw20"
	"github.com/satlayer/satlayer-vesting/vesting-api/logger"
)

var (
	contractPrefix = []byte("contract/")
	ledgerPrefix   = []byte("ledger/")
	runtimePrefix  = []byte("runtime/")

	instantiatedKey = []byte("instantiated")
)

var ErrAlreadyInstantiated = errorsmod.Register("host", 2, "contract is already instantiated")

// Contract is the entry point set of a contract hosted by the Runtime. Messages are raw JSON.
type Contract interface {
	Instantiate(ctx context.Context, env Env, info MessageInfo, msg []byte) (*Response, error)
	Execute(ctx context.Context, env Env, info MessageInfo, msg []byte) (*Response, error)
	Query(ctx context.Context, env Env, msg []byte) ([]byte, error)
}

// Indicators receives the runtime's counters.
type Indicators interface {
	AddInvocation(entryPoint, method, status string)
	ObserveInvocationDurationSeconds(duration float64, entryPoint string)
	AddTransfer(kind, denom string)
}

type nopIndicators struct{}

func (nopIndicators) AddInvocation(string, string, string) {}
func (nopIndicators) ObserveInvocationDurationSeconds(float64, string) {}
func (nopIndicators) AddTransfer(string, string) {}

// Runtime hosts one contract instance on top of a database. Invocations are serialized;
// each one runs on a cache of the database that is written back only when the contract
// and every message it emitted succeeded.
type Runtime struct {
	mu         sync.Mutex
	root       storetypes.KVStore
	contract   Contract
	name       string
	address    string
	chainID    string
	ledger     *Ledger
	logger     logger.Logger
	indicators Indicators
}

type RuntimeOption func(*Runtime)

func WithLogger(l logger.Logger) RuntimeOption {
	return func(r *Runtime) {
		r.logger = l
	}
}

func WithIndicators(i Indicators) RuntimeOption {
	return func(r *Runtime) {
		r.indicators = i
	}
}

// WithChainID sets the chain id reported to the contract when the caller's block has none.
func WithChainID(chainID string) RuntimeOption {
	return func(r *Runtime) {
		r.chainID = chainID
	}
}

func NewRuntime(db dbm.DB, name string, contract Contract, address string, opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		root:       dbadapter.Store{DB: db},
		contract:   contract,
		name:       name,
		address:    address,
		chainID:    "vesting-local",
		ledger:     NewLedger(),
		logger:     logger.NewNopLogger(),
		indicators: nopIndicators{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runtime) Name() string {
	return r.name
}

// Address is the contract address, the holder of the contract's funds.
func (r *Runtime) Address() string {
	return r.address
}

// Instantiate runs the instantiate entry point. It succeeds at most once per database.
func (r *Runtime) Instantiate(ctx context.Context, block BlockInfo, info MessageInfo, msg []byte) (*Response, error) {
	deposit := r.deposit(info)
	return r.invoke(ctx, "instantiate", "instantiate", block, info.Sender,
		func(ctx context.Context) error {
			store := storeFromContext(ctx, runtimeStoreKey)
			if store.Has(instantiatedKey) {
				return errorsmod.Wrapf(ErrAlreadyInstantiated, "contract %s", r.address)
			}
			store.Set(instantiatedKey, []byte{1})
			return deposit(ctx)
		},
		func(ctx context.Context, env Env) (*Response, error) {
			return r.contract.Instantiate(ctx, env, info, msg)
		})
}

func (r *Runtime) Execute(ctx context.Context, block BlockInfo, info MessageInfo, msg []byte) (*Response, error) {
	return r.invoke(ctx, "execute", messageName(msg), block, info.Sender,
		r.deposit(info),
		func(ctx context.Context, env Env) (*Response, error) {
			return r.contract.Execute(ctx, env, info, msg)
		})
}

// SendCw20 runs a cw20 send of amount from sender to the contract: the balance moves first,
// then the contract receives the hook with the token as message sender.
func (r *Runtime) SendCw20(ctx context.Context, block BlockInfo, token, sender string, amount sdkmath.Int, hook []byte) (*Response, error) {
	msg, err := cw20.NewReceiveMsg(sender, amount.String(), hook)
	if err != nil {
		return nil, err
	}
	return r.invoke(ctx, "execute", "receive", block, sender,
		func(ctx context.Context) error {
			return r.ledger.TransferCw20(ctx, token, sender, r.address, amount)
		},
		func(ctx context.Context, env Env) (*Response, error) {
			return r.contract.Execute(ctx, env, MessageInfo{Sender: token}, msg)
		})
}

// Instantiated reports whether Instantiate has committed.
func (r *Runtime) Instantiated(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return storeFromContext(r.scope(ctx, r.root), runtimeStoreKey).Has(instantiatedKey)
}

// Query runs a read-only entry point. Writes are discarded.
func (r *Runtime) Query(ctx context.Context, block BlockInfo, msg []byte) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	ctx = r.scope(ctx, cachekv.NewStore(r.root))
	method := messageName(msg)

	bz, err := guard(func() ([]byte, error) {
		return r.contract.Query(ctx, r.env(block), msg)
	})
	r.indicators.ObserveInvocationDurationSeconds(time.Since(start).Seconds(), "query")
	if err != nil {
		r.indicators.AddInvocation("query", method, "error")
		r.logger.Debug("query failed",
			logger.WithField("contract", r.name),
			logger.WithField("method", method),
			logger.WithField("error", err))
		return nil, err
	}
	r.indicators.AddInvocation("query", method, "ok")
	return bz, nil
}

// Fund mints native coins to address.
func (r *Runtime) Fund(ctx context.Context, address string, coins sdk.Coins) error {
	return r.write(ctx, func(ctx context.Context) error {
		return r.ledger.Mint(ctx, address, coins)
	})
}

// FundCw20 mints cw20 balance of token to address.
func (r *Runtime) FundCw20(ctx context.Context, token, address string, amount sdkmath.Int) error {
	return r.write(ctx, func(ctx context.Context) error {
		return r.ledger.MintCw20(ctx, token, address, amount)
	})
}

func (r *Runtime) Balance(ctx context.Context, address, denom string) (sdkmath.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger.Balance(r.scope(ctx, r.root), address, denom)
}

func (r *Runtime) Cw20Balance(ctx context.Context, token, address string) (sdkmath.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger.Cw20Balance(r.scope(ctx, r.root), token, address)
}

func (r *Runtime) scope(ctx context.Context, store storetypes.KVStore) context.Context {
	ctx = WithStore(ctx, prefix.NewStore(store, contractPrefix))
	ctx = withRuntimeStore(ctx, prefix.NewStore(store, runtimePrefix))
	return withLedgerStore(ctx, prefix.NewStore(store, ledgerPrefix))
}

func (r *Runtime) env(block BlockInfo) Env {
	if block.ChainID == "" {
		block.ChainID = r.chainID
	}
	return Env{Block: block, Contract: ContractInfo{Address: r.address}}
}

func (r *Runtime) deposit(info MessageInfo) func(context.Context) error {
	return func(ctx context.Context) error {
		if info.Funds.Empty() {
			return nil
		}
		if err := info.Funds.Validate(); err != nil {
			return fmt.Errorf("invalid funds: %w", err)
		}
		return r.ledger.Send(ctx, info.Sender, r.address, info.Funds)
	}
}

func (r *Runtime) write(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cache := cachekv.NewStore(r.root)
	if err := fn(r.scope(ctx, cache)); err != nil {
		return err
	}
	cache.Write()
	return nil
}

type transfer struct {
	kind  string
	denom string
}

func (r *Runtime) invoke(
	ctx context.Context,
	entryPoint, method string,
	block BlockInfo,
	sender string,
	pre func(ctx context.Context) error,
	run func(ctx context.Context, env Env) (*Response, error),
) (*Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	cache := cachekv.NewStore(r.root)
	ctx = r.scope(ctx, cache)
	env := r.env(block)

	fields := []logger.Field{
		logger.WithField("contract", r.name),
		logger.WithField("entry_point", entryPoint),
		logger.WithField("method", method),
		logger.WithField("sender", sender),
		logger.WithField("height", env.Block.Height),
	}
	r.logger.Debug("invocation started", fields...)

	res, transfers, err := r.apply(ctx, env, pre, run)
	r.indicators.ObserveInvocationDurationSeconds(time.Since(start).Seconds(), entryPoint)
	if err != nil {
		r.indicators.AddInvocation(entryPoint, method, "error")
		r.logger.Warn("invocation reverted", append(fields, logger.WithField("error", err))...)
		return nil, err
	}

	cache.Write()
	r.indicators.AddInvocation(entryPoint, method, "ok")
	for _, t := range transfers {
		r.indicators.AddTransfer(t.kind, t.denom)
	}
	r.logger.Debug("invocation committed", append(fields, logger.WithField("messages", len(res.Messages)))...)
	return res, nil
}

func (r *Runtime) apply(
	ctx context.Context,
	env Env,
	pre func(ctx context.Context) error,
	run func(ctx context.Context, env Env) (*Response, error),
) (*Response, []transfer, error) {
	if err := pre(ctx); err != nil {
		return nil, nil, err
	}
	res, err := guard(func() (*Response, error) {
		return run(ctx, env)
	})
	if err != nil {
		return nil, nil, err
	}
	if res == nil {
		res = NewResponse()
	}
	transfers, err := r.dispatch(ctx, res.Messages)
	if err != nil {
		return nil, nil, err
	}
	return res, transfers, nil
}

// dispatch settles the emitted messages in order. Only bank sends and cw20 transfers are supported.
func (r *Runtime) dispatch(ctx context.Context, msgs []wasmvmtypes.CosmosMsg) ([]transfer, error) {
	transfers := make([]transfer, 0, len(msgs))
	for i, msg := range msgs {
		switch {
		case msg.Bank != nil && msg.Bank.Send != nil:
			coins, err := toCoins(msg.Bank.Send.Amount)
			if err != nil {
				return nil, fmt.Errorf("message %d: %w", i, err)
			}
			if err := r.ledger.Send(ctx, r.address, msg.Bank.Send.ToAddress, coins); err != nil {
				return nil, fmt.Errorf("message %d: %w", i, err)
			}
			for _, coin := range coins {
				transfers = append(transfers, transfer{kind: "bank", denom: coin.Denom})
			}

		case msg.Wasm != nil && msg.Wasm.Execute != nil:
			exec := msg.Wasm.Execute
			var body cw20.ExecuteMsg
			if err := json.Unmarshal(exec.Msg, &body); err != nil || body.Transfer == nil {
				return nil, fmt.Errorf("message %d: unsupported wasm execute on %s", i, exec.ContractAddr)
			}
			amount, ok := sdkmath.NewIntFromString(body.Transfer.Amount)
			if !ok {
				return nil, fmt.Errorf("message %d: invalid cw20 amount %q", i, body.Transfer.Amount)
			}
			if err := r.ledger.TransferCw20(ctx, exec.ContractAddr, r.address, body.Transfer.Recipient, amount); err != nil {
				return nil, fmt.Errorf("message %d: %w", i, err)
			}
			transfers = append(transfers, transfer{kind: "cw20", denom: exec.ContractAddr})

		default:
			return nil, fmt.Errorf("message %d: unsupported message", i)
		}
	}
	return transfers, nil
}

func toCoins(amount []wasmvmtypes.Coin) (sdk.Coins, error) {
	coins := make(sdk.Coins, 0, len(amount))
	for _, c := range amount {
		value, ok := sdkmath.NewIntFromString(c.Amount)
		if !ok {
			return nil, fmt.Errorf("invalid amount %q", c.Amount)
		}
		coin := sdk.Coin{Denom: c.Denom, Amount: value}
		if err := coin.Validate(); err != nil {
			return nil, err
		}
		coins = append(coins, coin)
	}
	return coins, nil
}

// guard turns a contract panic into an error so the invocation reverts.
func guard[T any](fn func() (T, error)) (res T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("contract panicked: %v", rec)
		}
	}()
	return fn()
}

// messageName is the variant tag of a JSON message, e.g. "claim" for {"claim":{}}.
func messageName(msg []byte) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(msg, &body); err != nil || len(body) != 1 {
		return "unknown"
	}
	for name := range body {
		return name
	}
	return "unknown"
}
