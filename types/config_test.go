// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cfgstring = `
title = "duelchain"
coinSymbol = "duel"
dbBackend = "memdb"
logLevel = "debug"

[[genesis]]
addr = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
amount = 100000

[[genesis]]
addr = "1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR"
amount = 50000
`

func TestInitCfgString(t *testing.T) {
	cfg, err := InitCfgString(cfgstring)
	require.NoError(t, err)
	assert.Equal(t, "duelchain", cfg.Title)
	assert.Equal(t, "duel", cfg.CoinSymbol)
	assert.Equal(t, "memdb", cfg.DBBackend)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.Genesis, 2)
	assert.Equal(t, int64(100000), cfg.Genesis[0].Amount)
	assert.Equal(t, "1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR", cfg.Genesis[1].Addr)
}

func TestInitCfgStringInvalid(t *testing.T) {
	_, err := InitCfgString(`title = ""`)
	assert.Equal(t, ErrInvalidParam, err)

	_, err = InitCfgString("not toml [[")
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "duelchain", cfg.Title)
	assert.Equal(t, "duel", cfg.CoinSymbol)
	assert.Equal(t, "memdb", cfg.DBBackend)
}
