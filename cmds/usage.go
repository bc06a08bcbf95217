package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.Output, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share one *Command
	names := make(map[*Command][]string)
	for name, command := range commands {
		if command == nil {
			continue
		}
		names[command] = append(names[command], name)
	}

	type entry struct {
		names   []string
		command *Command
	}
	var entries []entry
	for command, ns := range names {
		slices.Sort(ns)
		entries = append(entries, entry{
			names:   ns,
			command: command,
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		line := indent + strings.Join(e.names, ", ")
		if e.command.Description != "" {
			line += "\t" + e.command.Description
		}
		fmt.Fprintln(w, line)
		if len(e.command.Subs) > 0 {
			printCommands(w, e.command.Subs, depth+1)
		}
	}
}
