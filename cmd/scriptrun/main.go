// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// scriptrun is a one-shot script evaluator.  It concatenates the provided
// hex-encoded script fragments into a single instruction sequence,
// evaluates it against the standard dialect, and reports the final stack.
// The exit code reflects the usual terminal convention of a true value on
// top of the stack.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"

	"github.com/scriptvm/scriptvm"
)

type config struct {
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}" default:"warn"`
	Tolerate   bool   `long:"toleratemalformed" description:"Log and skip malformed instructions instead of failing"`
	Args       struct {
		Scripts []string `positional-arg-name:"script" required:"1" description:"Hex-encoded script fragments executed in order as one sequence"`
	} `positional-args:"true"`
}

func run() error {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	backend := btclog.NewBackend(os.Stderr)
	logger := backend.Logger("SCRP")
	level, ok := btclog.LevelFromString(cfg.DebugLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", cfg.DebugLevel)
	}
	logger.SetLevel(level)
	scriptvm.UseLogger(logger)

	var script []byte
	for _, fragment := range cfg.Args.Scripts {
		decoded, err := hex.DecodeString(fragment)
		if err != nil {
			return fmt.Errorf("invalid hex fragment %q: %v", fragment, err)
		}
		script = append(script, decoded...)
	}

	var engineFlags scriptvm.Flags
	if cfg.Tolerate {
		engineFlags |= scriptvm.TolerateMalformed
	}

	tokenizer := scriptvm.MakeScriptTokenizer(script)
	vm, err := scriptvm.NewEngine(scriptvm.StandardRegistry(), &tokenizer,
		engineFlags)
	if err != nil {
		return err
	}

	if err := vm.Execute(); err != nil {
		return fmt.Errorf("execution failed: %v", err)
	}

	stack := vm.GetStack()
	fmt.Printf("final stack (%d items, top last):\n", len(stack))
	for i, item := range stack {
		if len(item) == 0 {
			fmt.Printf("  %2d: <empty>\n", i)
			continue
		}
		fmt.Printf("  %2d: %x\n", i, item)
	}

	if err := vm.CheckErrorCondition(); err != nil {
		return fmt.Errorf("verification failed: %v", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
