package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/client"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/config"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/transport"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
)

func main() {
	ringFile := flag.String("config", "", "YAML file with the ring membership (m, members)")
	timeout := flag.Duration("timeout", 10*time.Second, "Timeout for each command")
	logLevel := flag.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	members := config.DefaultMembers()
	if *ringFile != "" {
		rf, err := config.LoadRing(*ringFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(2)
		}
		members = rf.Members
	}

	loggerConfig := pkg.DefaultConfig()
	loggerConfig.Level = *logLevel
	logger, err := pkg.New(loggerConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	grpcClient := transport.NewGRPCClient(logger, *timeout)
	defer grpcClient.Close()

	shell := client.NewShell(grpcClient, members, os.Stdout, logger, client.Options{Color: !color.NoColor})

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		runInteractive(shell)
		return
	}
	runScripted(shell, os.Stdin, os.Stdout)
}

// runInteractive prompts through survey; Ctrl-C ends the session.
func runInteractive(shell *client.Shell) {
	color.HiYellow("Chord client, type help for the command list")

	for {
		var line string
		err := survey.AskOne(
			&survey.Input{Message: client.Prompt},
			&line,
			survey.WithValidator(shell.ValidateLine))
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			fmt.Println("Shutting Down")
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read command: %v\n", err)
			return
		}

		if err := shell.Execute(context.Background(), line); errors.Is(err, client.ErrQuit) {
			return
		}
	}
}

// runScripted reads commands line by line, for pipes and files.
func runScripted(shell *client.Shell, in io.Reader, out io.Writer) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(out, "Shutting Down")
		os.Exit(0)
	}()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, client.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		if err := shell.Execute(context.Background(), scanner.Text()); errors.Is(err, client.ErrQuit) {
			return
		}
	}
}
