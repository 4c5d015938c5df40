// Package chain opens the local chain the CLI works against: a persistent database holding
// the ledger and the state of one vesting contract.
package chain

import (
	"fmt"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	airdrop "github.com/satlayer/satlayer-vesting/contracts/airdrop-token-vesting"
	coretokenvesting "github.com/satlayer/satlayer-vesting/contracts/core-token-vesting"
	coretokenvestingv2 "github.com/satlayer/satlayer-vesting/contracts/core-token-vesting-v2"
	"github.com/satlayer/satlayer-vesting/host"
	"github.com/satlayer/satlayer-vesting/vesting-api/logger"
	"github.com/satlayer/satlayer-vesting/vesting-api/metrics/indicators/runtime"
)

type Chain struct {
	db       dbm.DB
	Runtime  *host.Runtime
	Registry *prometheus.Registry
	Logger   logger.Logger
}

// NewContract builds the contract registered under name.
func NewContract(name, bech32Prefix string) (host.Contract, error) {
	switch name {
	case airdrop.Name:
		return airdrop.NewContract(bech32Prefix)
	case coretokenvesting.Name:
		return coretokenvesting.NewContract(bech32Prefix)
	case coretokenvestingv2.Name:
		return coretokenvestingv2.NewContract(bech32Prefix)
	}
	return nil, fmt.Errorf("unknown contract %q", name)
}

// Open opens the chain described by the viper configuration.
func Open() (*Chain, error) {
	l := logger.NewZapLogger("vesting", viper.GetString("log.level"))

	name := viper.GetString("contract")
	prefix := viper.GetString("bech32-prefix")
	contract, err := NewContract(name, prefix)
	if err != nil {
		return nil, err
	}

	db, err := dbm.NewDB("vesting", dbm.BackendType(viper.GetString("db-backend")), viper.GetString("home"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	address := viper.GetString("contract-address")
	if address == "" {
		address = host.GenerateAddress(prefix, name)
	}

	reg := prometheus.NewRegistry()
	rt := host.NewRuntime(db, name, contract, address,
		host.WithLogger(l),
		host.WithChainID(viper.GetString("chain-id")),
		host.WithIndicators(runtime.NewPromIndicators(name, reg)),
	)
	return &Chain{db: db, Runtime: rt, Registry: reg, Logger: l}, nil
}

func (c *Chain) Close() error {
	return c.db.Close()
}
