// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/lassandro/intcode/pkg/amplifier"
	"github.com/lassandro/intcode/pkg/config"
	"github.com/lassandro/intcode/pkg/debugger"
	"github.com/lassandro/intcode/pkg/encoding"
	"github.com/lassandro/intcode/pkg/machine"
)

var helpvar bool
var debugvar bool
var waitvar bool
var asciivar bool
var rawvar bool
var verbosevar int
var configvar string
var inputvar string
var patchvar string
var amplifyvar string
var phasesvar string

var shouldexit bool

// Shared by the input feeder and the debug REPL
var stdin = bufio.NewScanner(os.Stdin)

const usage = "intcode [-config file] [-input 1,2] [-wait] [-ascii] [-raw] " +
	"[-patch addr=value,...] [-amplify series|feedback -phases 0,1,2,3,4] " +
	"[-debug] [-v #] [filename]"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&debugvar, "debug", false, "Runs the machine in a debug CLI")
	flag.BoolVar(
		&waitvar, "wait", false,
		"Reads more input from stdin whenever the input queue runs dry",
	)
	flag.BoolVar(
		&asciivar, "ascii", false,
		"Treats input lines and output values as ASCII text",
	)
	flag.BoolVar(
		&rawvar, "raw", false,
		"Feeds single keystrokes from a raw terminal as input",
	)
	flag.IntVar(&verbosevar, "v", 0, "Log verbosity")
	flag.StringVar(&configvar, "config", "", "Loads settings from a TOML file")
	flag.StringVar(&inputvar, "input", "", "Initial input values: 1,2,3")
	flag.StringVar(
		&patchvar, "patch", "",
		"Memory cells to overwrite before running: addr=value,addr=value",
	)
	flag.StringVar(
		&amplifyvar, "amplify", "",
		"Searches phase settings for an amplifier chain: series or feedback",
	)
	flag.StringVar(&phasesvar, "phases", "", "Amplifier phase set: 0,1,2,3,4")
}

// loadConfig merges the config file, if any, with the flags that were set
// explicitly on the command line.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}

	if configvar != "" {
		var err error
		if cfg, err = config.Load(configvar); err != nil {
			return nil, err
		}
	}

	var err error

	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}

		switch f.Name {
		case "wait":
			cfg.Wait = waitvar
		case "ascii":
			cfg.ASCII = asciivar
		case "raw":
			cfg.Raw = rawvar
		case "v":
			cfg.Verbosity = verbosevar
		case "input":
			cfg.Input, err = encoding.ParseInts(inputvar)
		case "patch":
			cfg.Patches, err = config.ParsePatches(patchvar)
		case "amplify":
			cfg.Amplifier.Mode = amplifyvar
		case "phases":
			cfg.Amplifier.Phases, err = encoding.ParseInts(phasesvar)
		}
	})

	if err != nil {
		return nil, err
	}

	if args := flag.Args(); len(args) == 1 {
		cfg.Program = args[0]
		cfg.Dir = ""
	} else if len(args) > 1 {
		return nil, errors.New(usage)
	}

	if cfg.Program == "" {
		return nil, errors.New(usage)
	}

	if amplifyvar != "" && len(cfg.Amplifier.Phases) == 0 {
		cfg.Amplifier.Phases = []int64{0, 1, 2, 3, 4}

		if amplifyvar == "feedback" || amplifyvar == "f" {
			cfg.Amplifier.Phases = []int64{5, 6, 7, 8, 9}
		}
	}

	return cfg, cfg.Validate()
}

func intcode() int {
	flag.Parse()

	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	cfg, err := loadConfig()

	if err != nil {
		log.Println(err)
		return 1
	}

	commonlog.Configure(cfg.Verbosity, nil)

	text, err := os.ReadFile(cfg.ProgramPath())

	if err != nil {
		log.Println(err)
		return 1
	}

	mc, err := machine.New(string(text), cfg.Input)

	if err != nil {
		log.Println(err)
		return 1
	}

	for _, patch := range cfg.Patches {
		mc.Poke(patch.Addr, patch.Value)
	}

	if len(cfg.Amplifier.Phases) > 0 {
		return amplify(mc, cfg)
	}

	if cfg.Wait || cfg.Raw {
		mc.WaitOnInput()
	}

	var in feeder = newLineFeeder(stdin, cfg.ASCII)

	if cfg.Raw {
		enterRawTerm()
		defer exitRawTerm()

		in = newKeyFeeder(os.Stdin)
	}

	if debugvar {
		var dbg debugger.Debugger
		dbg.HandleBreak = handleBreak
		dbg.HandleRead = handleRead
		dbg.HandleWrite = handleWrite
		mc.Debugger = &dbg

		c := make(chan os.Signal, 1)
		defer func() {
			signal.Stop(c)
			close(c)
		}()

		signal.Notify(c, os.Interrupt)
		go func() {
			for range c {
				fmt.Println()
				dbg.Interrupt()
			}
		}()

		debugREPL(&dbg, mc)
	}

	return execute(mc, in, os.Stdout, cfg.ASCII || cfg.Raw)
}

func amplify(mc *machine.Machine, cfg *config.Config) int {
	mode, err := cfg.AmplifierMode()

	if err != nil {
		log.Println(err)
		return 1
	}

	signal, phases, err := amplifier.MaxSignal(mc, cfg.Amplifier.Phases, mode)

	if err != nil {
		log.Println(err)
		return 1
	}

	fmt.Printf("%d %v\n", signal, phases)

	return 0
}

func main() {
	os.Exit(intcode())
}
