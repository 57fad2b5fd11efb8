// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/meridianchain/lightdb/blockdigest"
	"github.com/meridianchain/lightdb/blockrecord"
	"github.com/meridianchain/lightdb/boltstore"
	"github.com/meridianchain/lightdb/database"
	"github.com/meridianchain/lightdb/engine"
	"github.com/meridianchain/lightdb/storage"
)

const commandTimeout = 30 * time.Second

// open the store selected by the global flags
//
// the caller must call the returned close function
func openStore(c *cli.Context) (*database.Database, context.Context, func()) {
	dir := c.GlobalString("database")
	name := c.GlobalString("name")

	logging := logger.Configuration{
		Directory: dir,
		File:      "lightdb-cli.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "error",
		},
	}
	if c.GlobalBool("verbose") {
		logging.Console = true
		logging.Levels[logger.DefaultTag] = "info"
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("Error: logger setup failed: %s", err)
	}

	var factory engine.Factory
	switch e := c.GlobalString("engine"); e {
	case "leveldb":
		factory = storage.NewFactory(dir)
	case "bolt":
		factory = boltstore.NewFactory(dir)
	default:
		exitwithstatus.Message("Error: engine: %q can only be leveldb/bolt", e)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)

	db, err := database.Open(ctx, factory, name)
	if nil != err {
		exitwithstatus.Message("Error: cannot open store %q: %s", name, err)
	}

	return db, ctx, func() {
		db.Close()
		cancel()
		logger.Finalise()
	}
}

func runInsert(c *cli.Context) error {
	packed, err := hex.DecodeString(c.String("header"))
	if nil != err {
		exitwithstatus.Message("Error: header is not hex: %s", err)
	}

	header, err := blockrecord.Decode(packed)
	if nil != err {
		exitwithstatus.Message("Error: %s", err)
	}

	db, ctx, close := openStore(c)
	defer close()

	err = db.InsertHeader(ctx, packed)
	if nil != err {
		exitwithstatus.Message("Error: %s", err)
	}

	printJson(c, struct {
		Number uint64 `json:"number"`
		Digest string `json:"digest"`
	}{
		Number: header.Number,
		Digest: blockdigest.NewDigest(packed).String(),
	})
	return nil
}

func runHeader(c *cli.Context) error {
	hash := c.String("hash")
	if "" == hash {
		exitwithstatus.Message("Error: missing hash argument")
	}

	db, ctx, close := openStore(c)
	defer close()

	stored, found, err := db.Header(ctx, hash)
	if nil != err {
		exitwithstatus.Message("Error: %s", err)
	}
	if !found {
		exitwithstatus.Message("Error: no header stored for: %q", hash)
	}

	packed, err := hex.DecodeString(stored)
	if nil != err {
		exitwithstatus.Message("Error: stored header is not hex: %s", err)
	}
	header, err := blockrecord.Decode(packed)
	if nil != err {
		exitwithstatus.Message("Error: %s", err)
	}

	printJson(c, header)
	return nil
}

func runBest(c *cli.Context) error {
	number := c.Uint64("number")

	db, ctx, close := openStore(c)
	defer close()

	hash, found, err := db.BestHash(ctx, number)
	if nil != err {
		exitwithstatus.Message("Error: %s", err)
	}
	if !found {
		exitwithstatus.Message("Error: no best-chain entry for number: %d", number)
	}

	printJson(c, struct {
		Number uint64 `json:"number"`
		Digest string `json:"digest"`
	}{
		Number: number,
		Digest: hash,
	})
	return nil
}

func runInfo(c *cli.Context) error {
	db, _, close := openStore(c)
	defer close()

	printJson(c, struct {
		Name        string   `json:"name"`
		Version     uint32   `json:"version"`
		Collections []string `json:"collections"`
	}{
		Name:        c.GlobalString("name"),
		Version:     db.Version(),
		Collections: db.Collections(),
	})
	return nil
}

func printJson(c *cli.Context, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("Error: marshal error: %s", err)
	}
	fmt.Fprintf(c.App.Writer, "%s\n", b)
}
