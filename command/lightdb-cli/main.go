// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	// ensure exit handler runs last
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "lightdb-cli"
	app.Usage = "inspect and update a light-client header store"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "database, d",
			Value: ".",
			Usage: " directory holding the stores `DIR`",
		},
		cli.StringFlag{
			Name:  "name, n",
			Value: "chain-db",
			Usage: " store `NAME`",
		},
		cli.StringFlag{
			Name:  "engine, e",
			Value: "leveldb",
			Usage: " storage engine [leveldb|bolt]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "insert a packed header and update the best-chain index",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "header, x",
					Value: "",
					Usage: "*hex encoded packed header `HEX`",
				},
			},
			Action: runInsert,
		},
		{
			Name:      "header",
			Usage:     "show the stored header for a block hash",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, x",
					Value: "",
					Usage: "*hex encoded block hash `HEX`",
				},
			},
			Action: runHeader,
		},
		{
			Name:      "best",
			Usage:     "show the best-chain hash for a block number",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "number, b",
					Value: 0,
					Usage: "*block number `NUMBER`",
				},
			},
			Action: runBest,
		},
		{
			Name:   "info",
			Usage:  "show schema version and collections of the store",
			Action: runInfo,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("Error: %s", err)
	}
}
