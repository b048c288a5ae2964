/*
Gramc compiles one of the built-in demo grammars, derives its edit rules,
runs the ambiguity detector, and writes the resulting artifact.

Usage:

	gramc [flags]

The flags are:

	-v, --version
		Give the current version of the grammar compiler and then exit.

	-f, --fixture NAME
		Compile the named built-in grammar (default "people-qa"). See
		fixtures.go for the available names.

	-c, --config FILE
		Load detector configuration from the given TOML file. If not given,
		config.Default() is used.

	-o, --out FILE
		Write the compiled artifact to FILE (default stdout).

	--json
		Write the artifact as JSON instead of the default binary REZI form.

	--inspect
		After compiling, start an interactive readline session for browsing
		the compiled symbols.
*/
package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/pellham/nlgram/internal/ambiguity"
	"github.com/pellham/nlgram/internal/config"
	"github.com/pellham/nlgram/internal/editrules"
	"github.com/pellham/nlgram/internal/elog"
	"github.com/pellham/nlgram/internal/grammar"
	"github.com/pellham/nlgram/internal/report"
	"github.com/pellham/nlgram/internal/serialize"
	"github.com/pellham/nlgram/internal/version"
)

const (
	ExitSuccess = iota
	ExitCompileError
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	flagFixture = pflag.StringP("fixture", "f", "people-qa", "The built-in demo grammar to compile")
	flagConfig  = pflag.StringP("config", "c", "", "TOML file of detector configuration")
	flagOut     = pflag.StringP("out", "o", "", "File to write the compiled artifact to (default stdout)")
	flagJSON    = pflag.Bool("json", false, "Write the artifact as JSON instead of binary REZI")
	flagInspect = pflag.Bool("inspect", false, "Start an interactive inspector after compiling")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg := config.Default()
	if *flagConfig != "" {
		loaded, err := config.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		cfg = loaded
	}

	log := elog.New()

	var g *grammar.Grammar
	var err error
	if cfg.Detector.UseTestRules {
		g, err = ambiguity.BuildTestGrammar()
	} else {
		g, err = buildFixture(*flagFixture)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitCompileError
		return
	}

	editrules.Generate(g)

	witnesses := ambiguity.Detect(g, cfg.Detector)
	if !cfg.Detector.NoOutput {
		for _, w := range witnesses {
			log.Ambiguity(w)
			fmt.Fprintln(os.Stderr, report.RenderWitness(w))
		}
	}

	artifact := serialize.FromGrammar(g)

	var data []byte
	if *flagJSON {
		data, err = artifact.ToJSON()
	} else {
		data, err = artifact.MarshalBinary()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitCompileError
		return
	}

	if *flagOut == "" {
		os.Stdout.Write(data)
	} else {
		if err := os.WriteFile(*flagOut, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
	}

	if *flagInspect {
		runInspector(g)
	}
}

// runInspector starts a small readline-based REPL for listing symbols
// and their rules.
func runInspector(g interface {
	SymbolNames() []string
}) {
	rl, err := readline.New("gramc> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return
	}
	defer rl.Close()

	fmt.Println("gramc inspector; type LIST to show compiled symbols, or QUIT to exit")
	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		if line == "QUIT" {
			return
		}
		if line == "LIST" {
			for _, name := range g.SymbolNames() {
				fmt.Println(name)
			}
			continue
		}
		fmt.Println("unknown command; try LIST or QUIT")
	}
}
