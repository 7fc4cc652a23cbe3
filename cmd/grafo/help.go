// ABOUTME: Help display for the grafo CLI with grouped flags and examples.
// ABOUTME: Provides printHelp for usage output on -h and bare invocation.
package main

import (
	"fmt"
	"io"
)

// printHelp writes a formatted help message to w.
func printHelp(w io.Writer, ver string) {
	fmt.Fprintf(w, "grafo %s — graph, digraph, and flow network editor\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  grafo -serve [-port 8240]           Start the HTTP editor API")
	fmt.Fprintln(w, "  grafo -tui [-kind graph]            Edit one model in the terminal")
	fmt.Fprintln(w, "  grafo -version                      Print version and exit")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -kind <variant>       graph, digraph, or network (default: graph)")
	fmt.Fprintln(w, "  -port <port>          Server port (default: 8240)")
	fmt.Fprintln(w, "  -data-dir <dir>       Interchange and journal directory (default: $XDG_DATA_HOME/grafo)")
	fmt.Fprintln(w, "  -bin-dir <dir>        Directory holding graph.out, digraph.out, network.out")
	fmt.Fprintln(w, "  -config <file>        Config file (default: $XDG_CONFIG_HOME/grafo/config.yaml)")
	fmt.Fprintln(w, "  -catalog <file>       Algorithm catalog override (YAML)")
	fmt.Fprintln(w, "  -no-journal           Disable the command/run journal")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  grafo -serve -port 9000 -bin-dir ./bin")
	fmt.Fprintln(w, "  grafo -tui -kind network")
}
