package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gin-gonic/gin"

	cosmwasmapi "github.com/satlayer/satlayer-vesting/cosmwasm-api"
	"github.com/satlayer/satlayer-vesting/host"
	"github.com/satlayer/satlayer-vesting/vesting-cli/api/resp"
)

// Invocation is the body of the instantiate and execute endpoints.
type Invocation struct {
	Sender string          `json:"sender" binding:"required"`
	Funds  string          `json:"funds"`
	Msg    json.RawMessage `json:"msg" binding:"required"`
	Height uint64          `json:"height"`
	Time   uint64          `json:"time"`
}

type QueryPayload struct {
	Msg    json.RawMessage `json:"msg" binding:"required"`
	Height uint64          `json:"height"`
	Time   uint64          `json:"time"`
}

type Cw20SendPayload struct {
	Token  string          `json:"token" binding:"required"`
	Sender string          `json:"sender" binding:"required"`
	Amount string          `json:"amount" binding:"required"`
	Msg    json.RawMessage `json:"msg" binding:"required"`
	Height uint64          `json:"height"`
	Time   uint64          `json:"time"`
}

type FundPayload struct {
	Address string `json:"address" binding:"required"`
	Coins   string `json:"coins" binding:"required"`
}

type handler struct {
	runtime *host.Runtime
}

// SetupRoutes registers the chain endpoints on router.
func SetupRoutes(router *gin.Engine, rt *host.Runtime) {
	h := handler{runtime: rt}
	group := router.Group("/api")
	group.POST("/instantiate", h.instantiate)
	group.POST("/execute", h.execute)
	group.POST("/query", h.query)
	group.POST("/cw20/send", h.cw20Send)
	group.POST("/fund", h.fund)
	group.GET("/balance/:address/:denom", h.balance)
}

// block fills in the current time when the caller gave none.
func block(height, t uint64) host.BlockInfo {
	if t == 0 {
		t = uint64(time.Now().Unix())
	}
	if height == 0 {
		height = 1
	}
	return host.BlockInfo{Height: height, Time: t}
}

// isObject reports whether msg is a JSON object, the only shape of a contract message.
func isObject(msg json.RawMessage) bool {
	var body map[string]json.RawMessage
	return json.Unmarshal(msg, &body) == nil && body != nil
}

func (h handler) instantiate(c *gin.Context) {
	h.invoke(c, cosmwasmapi.Instantiate)
}

func (h handler) execute(c *gin.Context) {
	h.invoke(c, cosmwasmapi.Execute)
}

type entryPoint func(rt *host.Runtime, ctx context.Context, opts cosmwasmapi.ExecuteOptions) (*host.Response, error)

func (h handler) invoke(c *gin.Context, run entryPoint) {
	var payload Invocation
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, resp.ErrParam)
		return
	}
	if !isObject(payload.Msg) {
		c.JSON(http.StatusBadRequest, resp.ErrMessage)
		return
	}

	b := block(payload.Height, payload.Time)
	opts := cosmwasmapi.DefaultExecuteOptions().
		WithSender(payload.Sender).
		WithExecuteMsg(payload.Msg).
		WithBlock(b.Height, b.Time)
	if payload.Funds != "" {
		if _, err := sdk.ParseCoinsNormalized(payload.Funds); err != nil {
			c.JSON(http.StatusBadRequest, resp.ErrCoins.WithData(err.Error()))
			return
		}
		opts = opts.WithFunds(payload.Funds)
	}

	res, err := run(h.runtime, c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, resp.ErrContract.WithData(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp.OK.WithData(res))
}

func (h handler) query(c *gin.Context) {
	var payload QueryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, resp.ErrParam)
		return
	}
	if !isObject(payload.Msg) {
		c.JSON(http.StatusBadRequest, resp.ErrMessage)
		return
	}
	data, err := cosmwasmapi.Query[json.RawMessage](h.runtime, c.Request.Context(), block(payload.Height, payload.Time), payload.Msg)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, resp.ErrQuery.WithData(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp.OK.WithData(data))
}

func (h handler) cw20Send(c *gin.Context) {
	var payload Cw20SendPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, resp.ErrParam)
		return
	}
	amount, ok := sdkmath.NewIntFromString(payload.Amount)
	if !ok || !amount.IsPositive() {
		c.JSON(http.StatusBadRequest, resp.ErrAmount)
		return
	}
	res, err := h.runtime.SendCw20(c.Request.Context(), block(payload.Height, payload.Time),
		payload.Token, payload.Sender, amount, payload.Msg)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, resp.ErrContract.WithData(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp.OK.WithData(res))
}

func (h handler) fund(c *gin.Context) {
	var payload FundPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, resp.ErrParam)
		return
	}
	coins, err := sdk.ParseCoinsNormalized(payload.Coins)
	if err != nil {
		c.JSON(http.StatusBadRequest, resp.ErrCoins.WithData(err.Error()))
		return
	}
	if err := h.runtime.Fund(c.Request.Context(), payload.Address, coins); err != nil {
		c.JSON(http.StatusInternalServerError, resp.ErrLedger.WithData(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp.OK)
}

// balance reads a native balance, or a cw20 balance when denom is "cw20:<token>".
func (h handler) balance(c *gin.Context) {
	address, denom := c.Param("address"), c.Param("denom")

	var (
		amount sdkmath.Int
		err    error
	)
	if token, ok := strings.CutPrefix(denom, "cw20:"); ok {
		amount, err = h.runtime.Cw20Balance(c.Request.Context(), token, address)
	} else {
		amount, err = h.runtime.Balance(c.Request.Context(), address, denom)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.ErrLedger.WithData(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp.OK.WithData(gin.H{"address": address, "denom": denom, "amount": amount.String()}))
}
