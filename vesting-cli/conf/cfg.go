package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

type Conf struct {
	Home            string      `mapstructure:"home" toml:"home"`
	DBBackend       string      `mapstructure:"db-backend" toml:"db-backend"`
	ChainID         string      `mapstructure:"chain-id" toml:"chain-id"`
	Bech32Prefix    string      `mapstructure:"bech32-prefix" toml:"bech32-prefix"`
	Contract        string      `mapstructure:"contract" toml:"contract"`
	ContractAddress string      `mapstructure:"contract-address" toml:"contract-address"`
	Log             LogConf     `mapstructure:"log" toml:"log"`
	API             APIConf     `mapstructure:"api" toml:"api"`
	Metrics         MetricsConf `mapstructure:"metrics" toml:"metrics"`
}

type LogConf struct {
	Level string `mapstructure:"level" toml:"level"`
}

type APIConf struct {
	Listen string `mapstructure:"listen" toml:"listen"`
}

type MetricsConf struct {
	Listen string `mapstructure:"listen" toml:"listen"`
}

var C *Conf

// Default is the configuration written on first use.
func Default(home string) Conf {
	return Conf{
		Home:         filepath.Join(home, ".vesting"),
		DBBackend:    "goleveldb",
		ChainID:      "vesting-local",
		Bech32Prefix: "cosmos",
		Contract:     "airdrop-token-vesting",
		Log:          LogConf{Level: "info"},
		API:          APIConf{Listen: "127.0.0.1:8080"},
		Metrics:      MetricsConf{Listen: "127.0.0.1:9090"},
	}
}

func InitConfig() {
	configPath := os.Getenv("VESTING_CONFIG")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			panic(fmt.Sprintf("Error getting home directory: %s\n", err))
		}
		configPath = filepath.Join(home, ".config", "vesting", "config.toml")
	}
	if err := ensureConfig(configPath); err != nil {
		panic(err)
	}
	viper.SetConfigFile(configPath)

	// read config file
	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("Error reading config file:", err)
	}
	if err := viper.Unmarshal(&C); err != nil {
		panic(fmt.Sprintf("config file invalid. %+x", err))
	}
}

// ensureConfig writes the default configuration to path unless a file already exists there.
func ensureConfig(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("error getting home directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()
	if err := toml.NewEncoder(file).Encode(Default(home)); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}
	return nil
}
