package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/wmctl/internal/config"
)

func printConfigUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  wmctl config print    Show the effective configuration as YAML")
	fmt.Fprintln(os.Stderr, "  wmctl config path     Show the config file location")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage()
		return 2
	}

	switch args[0] {
	case "print":
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		os.Stdout.Write(data)
		return 0

	case "path":
		path, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(path)
		return 0

	case "help", "-h", "--help":
		printConfigUsage()
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		printConfigUsage()
		return 2
	}
}
