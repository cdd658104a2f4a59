// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"

	tml "github.com/BurntSushi/toml"
)

// Config 链配置
type Config struct {
	// Title 链名
	Title string `toml:"title"`
	// CoinSymbol 原生代币符号
	CoinSymbol string `toml:"coinSymbol"`
	// DBBackend 存储后端: memdb / gobadgerdb
	DBBackend string `toml:"dbBackend"`
	// DBPath 存储目录
	DBPath string `toml:"dbPath"`
	// DBCache 存储缓存(MB)
	DBCache int `toml:"dbCache"`
	// LogLevel 日志级别
	LogLevel string `toml:"logLevel"`
	// Genesis 创世分配
	Genesis []GenesisAccount `toml:"genesis"`
}

// GenesisAccount 创世账户
type GenesisAccount struct {
	Addr   string `toml:"addr"`
	Amount int64  `toml:"amount"`
}

// DefaultConfig 默认配置，内存后端
func DefaultConfig() *Config {
	return &Config{
		Title:      "duelchain",
		CoinSymbol: "duel",
		DBBackend:  "memdb",
		DBPath:     "datadir",
		DBCache:    64,
		LogLevel:   "info",
	}
}

// InitCfg 从文件读取配置
func InitCfg(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return InitCfgString(string(data))
}

// InitCfgString 从字符串读取配置
func InitCfgString(cfgstring string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := tml.Decode(cfgstring, cfg); err != nil {
		return nil, err
	}
	if cfg.Title == "" || cfg.CoinSymbol == "" {
		return nil, ErrInvalidParam
	}
	return cfg, nil
}
