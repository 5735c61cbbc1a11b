// Package main Castledice Storage API
//
// Castledice Storage is the platform backend that stores users, games,
// wallets and tokenized digital assets. Its core is the asset ownership
// ledger: uniquely identified NFTs bound to users, with freeze/unfreeze
// locking and atomic, precondition-checked transfer between two users.
//
//	Schemes: http, https
//	Host: localhost:8080
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
package main

import (
	"context"

	_ "github.com/castledice/storage/docs"
	"github.com/castledice/storage/internal/app"
)

// @title Castledice Storage API Service
// @version 1.0
// @description Castledice Storage manages users, games, wallets and the tokenized asset ledger of the platform.

// @host localhost:8080
// @BasePath /
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
