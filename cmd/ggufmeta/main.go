package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Noth1ngLol/Llol/internal"
	"github.com/Noth1ngLol/Llol/internal/command"
	"github.com/Noth1ngLol/Llol/internal/logger"
	"github.com/Noth1ngLol/Llol/internal/utils"
)

func main() {
	inputs, err := utils.HandleCLIInputs("ggufmeta", os.Args[1:], internal.DefaultConfigPath(), command.Usage)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg := internal.LoadConfig(inputs.ConfigPath)

	level := inputs.LogLevel
	if level == "" {
		level = cfg.EffectiveLogLevel()
	}
	if err := logger.SetLevel(level); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cmd, err := command.Parse(inputs.Args)
	if err != nil {
		fmt.Println(err)
		command.Usage(os.Stdout)
		os.Exit(1)
	}

	executor := command.Executor{
		Config: cfg,
		Out:    os.Stdout,
		Output: inputs.Output,
		Format: inputs.Format,
		Atomic: inputs.Atomic,
	}

	if err := executor.Execute(cmd); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
