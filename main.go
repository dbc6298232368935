// Package main is the entry point of the fuzzyrank CLI.
package main

import (
	"github.com/fuzzyrank/fuzzyrank/cmd"
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/internal/iocache"
)

func main() {
	err := cmd.Execute()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}
	iocache.CloseStores()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
