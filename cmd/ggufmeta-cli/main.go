package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Noth1ngLol/Llol/internal"
	"github.com/Noth1ngLol/Llol/internal/command"
	"github.com/Noth1ngLol/Llol/internal/logger"
	"github.com/Noth1ngLol/Llol/internal/utils"
)

func main() {
	inputs, err := utils.HandleCLIInputs("ggufmeta-cli", os.Args[1:], internal.DefaultConfigPath(), command.Usage)
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

	executor := command.Executor{
		Config: cfg,
		Out:    os.Stdout,
		Output: inputs.Output,
		Format: inputs.Format,
		Atomic: inputs.Atomic,
	}

	stop := utils.OnInterruptOrKill(func(os.Signal) {
		fmt.Println()
		os.Exit(0)
	})
	defer stop()

	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Println("input error:", err)
				return
			}
			// Run a final unterminated line, then quit.
			if line == "" {
				return
			}
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if line == "exit" {
			return
		}

		cmd, err := command.ParseLine(line)
		if err != nil {
			fmt.Println(err)
			continue
		}

		if err := executor.Execute(cmd); err != nil {
			fmt.Println(err)
		}
	}
}
