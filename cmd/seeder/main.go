package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - generate: build the referentially consistent dataset JSON files
// - populate: load the dataset files into DynamoDB

func main() {
	// Subcommand definitions
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	populateCmd := flag.NewFlagSet("populate", flag.ExitOnError)

	// generate parameters
	generateConfig := generateCmd.String("config", "config/config.yaml", "Path to the configuration file")
	generateOut := generateCmd.String("out", "./dynamodb_data", "Output directory for the dataset JSON files")
	generateSeed := generateCmd.Uint64("seed", 0, "Override the configured RNG seed (0 keeps the config value)")

	// populate parameters
	populateConfig := populateCmd.String("config", "config/config.yaml", "Path to the configuration file")
	populateDir := populateCmd.String("dir", "./dynamodb_data", "Directory holding the dataset JSON files")
	populateMode := populateCmd.String("mode", "append", "Load mode: append or replace")
	populateTimeout := populateCmd.Duration("timeout", 0, "Overall load deadline (0 means no deadline)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	flags := seederFlags{
		Generate: generateFlags{
			cmd:    generateCmd,
			config: generateConfig,
			out:    generateOut,
			seed:   generateSeed,
		},
		Populate: populateFlags{
			cmd:     populateCmd,
			config:  populateConfig,
			dir:     populateDir,
			mode:    populateMode,
			timeout: populateTimeout,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type seederFlags struct {
	Generate generateFlags
	Populate populateFlags
}

type generateFlags struct {
	cmd    *flag.FlagSet
	config *string
	out    *string
	seed   *uint64
}

type populateFlags struct {
	cmd     *flag.FlagSet
	config  *string
	dir     *string
	mode    *string
	timeout *time.Duration
}

func runSubcommand(ctx context.Context, flags *seederFlags) error {
	switch os.Args[1] {
	case "generate":
		return handleGenerate(flags)
	case "populate":
		return handlePopulate(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleGenerate(flags *seederFlags) error {
	if err := flags.Generate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse generate flags")
	}

	return runGenerate(*flags.Generate.config, *flags.Generate.out, *flags.Generate.seed)
}

func handlePopulate(ctx context.Context, flags *seederFlags) error {
	if err := flags.Populate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse populate flags")
	}

	mode := *flags.Populate.mode
	if mode != modeAppend && mode != modeReplace {
		return errors.Errorf("invalid -mode %q: must be %s or %s", mode, modeAppend, modeReplace)
	}

	return runPopulate(ctx, *flags.Populate.config, *flags.Populate.dir, mode, *flags.Populate.timeout)
}

func printUsage() {
	fmt.Println("Usage: seeder <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  generate    Generate the dataset JSON files")
	fmt.Println("  populate    Load dataset files into DynamoDB")
	fmt.Println("")
	fmt.Println("Use 'seeder <command> -h' for more information about a command.")
}

// Command implementations are in their respective files
