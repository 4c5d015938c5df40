package host

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/satlayer/satlayer-vesting/cw20"
	"github.com/satlayer/satlayer-vesting/vesting-api/logger"
)

// payContract stores a marker and pays out whatever its message asks for.
type payContract struct{}

type payMsg struct {
	Pay *struct {
		Messages []wasmvmtypes.CosmosMsg `json:"messages"`
		Fail     bool                    `json:"fail"`
		Panic    bool                    `json:"panic"`
	} `json:"pay,omitempty"`
	Receive *cw20.ReceiveMsg `json:"receive,omitempty"`
}

func (payContract) Instantiate(ctx context.Context, env Env, info MessageInfo, msg []byte) (*Response, error) {
	StoreFromContext(ctx).Set([]byte("owner"), []byte(info.Sender))
	return NewResponse().AddAttribute("action", "instantiate"), nil
}

func (payContract) Execute(ctx context.Context, env Env, info MessageInfo, msg []byte) (*Response, error) {
	var m payMsg
	if err := json.Unmarshal(msg, &m); err != nil {
		return nil, err
	}
	store := StoreFromContext(ctx)
	switch {
	case m.Pay != nil:
		store.Set([]byte("marker"), []byte(env.Block.ChainID))
		if m.Pay.Panic {
			panic("boom")
		}
		if m.Pay.Fail {
			return nil, errors.New("failed on purpose")
		}
		return NewResponse().
			AddMessages(m.Pay.Messages...).
			AddAttribute("query", string(store.Get([]byte("query")))), nil
	case m.Receive != nil:
		hook, err := m.Receive.Hook()
		if err != nil {
			return nil, err
		}
		store.Set([]byte("hook"), hook)
		return NewResponse().AddAttribute("token", info.Sender).AddAttribute("amount", m.Receive.Amount), nil
	}
	return nil, errors.New("unknown message")
}

func (payContract) Query(ctx context.Context, env Env, msg []byte) ([]byte, error) {
	store := StoreFromContext(ctx)
	store.Set([]byte("query"), []byte("written"))
	return json.Marshal(map[string]string{
		"owner":  string(store.Get([]byte("owner"))),
		"marker": string(store.Get([]byte("marker"))),
		"hook":   string(store.Get([]byte("hook"))),
		"query":  string(store.Get([]byte("query"))),
	})
}

type RuntimeTestSuite struct {
	suite.Suite
	ctx     context.Context
	runtime *Runtime
	logger  *logger.MockLogger

	contract string
	alice    string
	bob      string
	token    string
}

func TestRuntime(t *testing.T) {
	suite.Run(t, new(RuntimeTestSuite))
}

func (s *RuntimeTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.contract = GenerateAddress("cosmos", "contract")
	s.alice = GenerateAddress("cosmos", "alice")
	s.bob = GenerateAddress("cosmos", "bob")
	s.token = GenerateAddress("cosmos", "token")
	s.logger = logger.NewMockLogger()
	s.runtime = NewRuntime(dbm.NewMemDB(), "pay", payContract{}, s.contract,
		WithLogger(s.logger), WithChainID("test-1"))

	s.Require().NoError(s.runtime.Fund(s.ctx, s.alice, sdk.NewCoins(sdk.NewInt64Coin("uusd", 1000))))
	s.Require().NoError(s.runtime.FundCw20(s.ctx, s.token, s.alice, sdkmath.NewInt(500)))
}

func (s *RuntimeTestSuite) balance(addr string) string {
	amount, err := s.runtime.Balance(s.ctx, addr, "uusd")
	s.Require().NoError(err)
	return amount.String()
}

func (s *RuntimeTestSuite) cw20Balance(addr string) string {
	amount, err := s.runtime.Cw20Balance(s.ctx, s.token, addr)
	s.Require().NoError(err)
	return amount.String()
}

func (s *RuntimeTestSuite) query() map[string]string {
	bz, err := s.runtime.Query(s.ctx, BlockInfo{Height: 1, Time: 1}, []byte(`{"state":{}}`))
	s.Require().NoError(err)
	var state map[string]string
	s.Require().NoError(json.Unmarshal(bz, &state))
	return state
}

func pay(msgs []wasmvmtypes.CosmosMsg, fail bool) []byte {
	bz, err := json.Marshal(map[string]any{"pay": map[string]any{"messages": msgs, "fail": fail}})
	if err != nil {
		panic(err)
	}
	return bz
}

func bankSend(to, amount string) wasmvmtypes.CosmosMsg {
	return wasmvmtypes.CosmosMsg{Bank: &wasmvmtypes.BankMsg{Send: &wasmvmtypes.SendMsg{
		ToAddress: to,
		Amount:    []wasmvmtypes.Coin{{Denom: "uusd", Amount: amount}},
	}}}
}

func (s *RuntimeTestSuite) TestInstantiateMovesFunds() {
	info := MessageInfo{Sender: s.alice, Funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 400))}
	res, err := s.runtime.Instantiate(s.ctx, BlockInfo{Height: 1, Time: 1}, info, []byte(`{}`))
	s.Require().NoError(err)
	s.Equal([]wasmvmtypes.EventAttribute{Attr("action", "instantiate")}, res.Attributes)

	s.Equal("600", s.balance(s.alice))
	s.Equal("400", s.balance(s.contract))
	s.Equal(s.alice, s.query()["owner"])
}

func (s *RuntimeTestSuite) TestInstantiateShortfallReverts() {
	info := MessageInfo{Sender: s.bob, Funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 1))}
	_, err := s.runtime.Instantiate(s.ctx, BlockInfo{Height: 1, Time: 1}, info, []byte(`{}`))
	s.ErrorContains(err, "insufficient funds")
	s.Empty(s.query()["owner"])
	s.False(s.runtime.Instantiated(s.ctx))
}

func (s *RuntimeTestSuite) TestInstantiateOnce() {
	info := MessageInfo{Sender: s.alice, Funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 400))}
	_, err := s.runtime.Instantiate(s.ctx, BlockInfo{Height: 1, Time: 1}, info, []byte(`{}`))
	s.Require().NoError(err)
	s.True(s.runtime.Instantiated(s.ctx))

	s.Require().NoError(s.runtime.Fund(s.ctx, s.bob, sdk.NewCoins(sdk.NewInt64Coin("uusd", 10))))
	info = MessageInfo{Sender: s.bob, Funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 10))}
	_, err = s.runtime.Instantiate(s.ctx, BlockInfo{Height: 2, Time: 2}, info, []byte(`{}`))
	s.ErrorIs(err, ErrAlreadyInstantiated)

	s.Equal(s.alice, s.query()["owner"])
	s.Equal("10", s.balance(s.bob))
	s.Equal("400", s.balance(s.contract))
}

func (s *RuntimeTestSuite) TestExecuteSettlesMessages() {
	info := MessageInfo{Sender: s.alice, Funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 300))}
	transfer, err := cw20.NewTransferMsg(s.bob, "200")
	s.Require().NoError(err)
	_, err = s.runtime.SendCw20(s.ctx, BlockInfo{Height: 1, Time: 1}, s.token, s.alice, sdkmath.NewInt(200), []byte(`{}`))
	s.Require().NoError(err)

	msgs := []wasmvmtypes.CosmosMsg{
		bankSend(s.bob, "120"),
		{Wasm: &wasmvmtypes.WasmMsg{Execute: &wasmvmtypes.ExecuteMsg{ContractAddr: s.token, Msg: transfer, Funds: []wasmvmtypes.Coin{}}}},
	}
	res, err := s.runtime.Execute(s.ctx, BlockInfo{Height: 2, Time: 2}, info, pay(msgs, false))
	s.Require().NoError(err)
	s.Len(res.Messages, 2)

	s.Equal("700", s.balance(s.alice))
	s.Equal("180", s.balance(s.contract))
	s.Equal("120", s.balance(s.bob))
	s.Equal("300", s.cw20Balance(s.alice))
	s.Equal("0", s.cw20Balance(s.contract))
	s.Equal("200", s.cw20Balance(s.bob))
	s.Equal("test-1", s.query()["marker"])
}

func (s *RuntimeTestSuite) TestExecuteRevertsOnContractError() {
	info := MessageInfo{Sender: s.alice, Funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 300))}
	_, err := s.runtime.Execute(s.ctx, BlockInfo{Height: 2, Time: 2}, info, pay(nil, true))
	s.EqualError(err, "failed on purpose")

	s.Equal("1000", s.balance(s.alice))
	s.Equal("0", s.balance(s.contract))
	s.Empty(s.query()["marker"])
	s.Contains(s.logger.Messages()[len(s.logger.Messages())-1], "invocation reverted")
}

func (s *RuntimeTestSuite) TestExecuteRevertsOnUnpayableMessage() {
	info := MessageInfo{Sender: s.alice, Funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 300))}
	_, err := s.runtime.Execute(s.ctx, BlockInfo{Height: 2, Time: 2}, info, pay([]wasmvmtypes.CosmosMsg{
		bankSend(s.bob, "100"),
		bankSend(s.bob, "201"),
	}, false))
	s.ErrorContains(err, "message 1")
	s.ErrorContains(err, "insufficient funds")

	s.Equal("1000", s.balance(s.alice))
	s.Equal("0", s.balance(s.bob))
	s.Empty(s.query()["marker"])
}

func (s *RuntimeTestSuite) TestExecuteRejectsUnsupportedMessage() {
	_, err := s.runtime.Execute(s.ctx, BlockInfo{Height: 2, Time: 2}, MessageInfo{Sender: s.alice}, pay([]wasmvmtypes.CosmosMsg{
		{Bank: &wasmvmtypes.BankMsg{Burn: &wasmvmtypes.BurnMsg{Amount: []wasmvmtypes.Coin{{Denom: "uusd", Amount: "1"}}}}},
	}, false))
	s.ErrorContains(err, "unsupported message")
}

func (s *RuntimeTestSuite) TestPanicReverts() {
	msg, err := json.Marshal(map[string]any{"pay": map[string]any{"panic": true}})
	s.Require().NoError(err)

	_, err = s.runtime.Execute(s.ctx, BlockInfo{Height: 2, Time: 2}, MessageInfo{Sender: s.alice}, msg)
	s.ErrorContains(err, "contract panicked: boom")
	s.Empty(s.query()["marker"])
}

func (s *RuntimeTestSuite) TestSendCw20() {
	res, err := s.runtime.SendCw20(s.ctx, BlockInfo{Height: 3, Time: 3}, s.token, s.alice, sdkmath.NewInt(150), []byte(`{"register":{}}`))
	s.Require().NoError(err)

	token, ok := res.Attribute("token")
	s.True(ok)
	s.Equal(s.token, token)
	s.Equal("350", s.cw20Balance(s.alice))
	s.Equal("150", s.cw20Balance(s.contract))
	s.Equal(`{"register":{}}`, s.query()["hook"])

	_, err = s.runtime.SendCw20(s.ctx, BlockInfo{Height: 3, Time: 3}, s.token, s.bob, sdkmath.NewInt(1), []byte(`{}`))
	s.ErrorContains(err, "insufficient funds")
}

func (s *RuntimeTestSuite) TestQueryDiscardsWrites() {
	s.Equal("written", s.query()["query"])

	res, err := s.runtime.Execute(s.ctx, BlockInfo{Height: 2, Time: 2}, MessageInfo{Sender: s.alice}, pay(nil, false))
	s.Require().NoError(err)
	value, ok := res.Attribute("query")
	s.True(ok)
	s.Empty(value)
}

func (s *RuntimeTestSuite) TestMessageName() {
	s.Equal("claim", messageName([]byte(`{"claim":{}}`)))
	s.Equal("unknown", messageName([]byte(`{"a":{},"b":{}}`)))
	s.Equal("unknown", messageName([]byte(`not json`)))
}
