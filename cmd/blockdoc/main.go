// Package main is the entry point for blockdoc, a small outline editor
// demonstrating the block-document engine: indent, outdent and retype
// driven interactively against a policy table.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bullet-to/bullet-editor-sub002/internal/config"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/policy"
	"github.com/bullet-to/bullet-editor-sub002/internal/plugin/policylua"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	policiesPath := flag.String("policies", "", "path to a JSON policy table")
	schemaPath := flag.String("schema", "", "path to a Lua policy schema script")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("blockdoc " + version)
		return 0
	}

	table, err := loadTable(*policiesPath, *schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	p := tea.NewProgram(newModel(table), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func loadTable(policiesPath, schemaPath string) (policy.Table, error) {
	switch {
	case policiesPath != "" && schemaPath != "":
		return nil, fmt.Errorf("use either -policies or -schema, not both")
	case policiesPath != "":
		return config.LoadPolicies(policiesPath)
	case schemaPath != "":
		return policylua.LoadFile(schemaPath)
	default:
		return policy.DefaultTable(), nil
	}
}
