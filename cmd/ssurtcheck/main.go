// Command ssurtcheck is a manual smoke-test harness: it reads one URL
// per line from stdin, canonicalizes it with the requested pipeline,
// and prints the result's String() and SSURT() forms separated by a
// tab.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hueristiq/go-ssurt"
	"github.com/hueristiq/go-ssurt/canon"
)

func pipelineByName(name string) (canon.Pipeline, bool) {
	switch name {
	case "whatwg":
		return canon.WHATWG, true
	case "semantic":
		return canon.SemanticPrecise, true
	case "aggressive":
		return canon.Aggressive, true
	default:
		return canon.Pipeline{}, false
	}
}

func main() {
	pipelineFlag := flag.String("pipeline", "semantic", "canonicalization pipeline: whatwg, semantic, or aggressive")
	flag.Parse()

	pipeline, ok := pipelineByName(*pipelineFlag)
	if !ok {
		log.Fatalf("ssurtcheck: unknown pipeline %q", *pipelineFlag)
	}

	scanner := bufio.NewScanner(os.Stdin)
	w := bufio.NewWriter(os.Stdout)

	defer w.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		err := ssurt.SafeCanonicalize(func() {
			u := ssurt.ParseString(line)
			pipeline.Canonicalize(u)

			fmt.Fprintf(w, "%s\t%s\n", u.String(), u.SSURT())
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "ssurtcheck: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("ssurtcheck: reading stdin: %v", err)
	}
}
