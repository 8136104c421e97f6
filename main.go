package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"wallgate/pkg/game/config"
	"wallgate/pkg/game/devtools"
	"wallgate/pkg/game/levelgen"
	"wallgate/pkg/game/renderer"
	"wallgate/pkg/game/state"
)

func initLocale() {
	gotext.Configure("mo/", "en_GB.utf8", "default")
}

// buildGame creates the demo game world.
func buildGame(cfg *config.Config, console *renderer.Console) *state.Game {
	g := state.NewGame(cfg, console)
	levelgen.BuildDemoStation(g)
	g.AddMessage(gotext.Get("Welcome aboard. Solve terminals to open portal exits."))
	return g
}

// printState shows the current map, hints and messages.
func printState(g *state.Game, console *renderer.Console) {
	renderer.PrintDivider("Station")
	fmt.Print(devtools.RenderMap(g))
	renderer.PrintDivider("Hints")
	for _, hint := range g.Hints {
		fmt.Println("- " + hint)
	}
	renderer.PrintDivider("Messages")
	for _, msg := range g.Messages {
		console.ShowMessage(msg)
	}
	renderer.PrintDivider("")
}

// runInteractive reads "puzzle-id answer" lines from stdin until EOF.
func runInteractive(g *state.Game, console *renderer.Console) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(gotext.Get("Enter: <puzzle-id> <answer>   (Ctrl-D to quit)"))
	for scanner.Scan() {
		fields := strings.SplitN(strings.TrimSpace(scanner.Text()), " ", 2)
		if len(fields) != 2 {
			console.ShowDenied(gotext.Get("Expected: <puzzle-id> <answer>"))
			continue
		}
		submit(g, console, fields[0], fields[1])
		printState(g, console)
	}
}

// submit tries one answer and reports the outcome.
func submit(g *state.Game, console *renderer.Console, puzzleID, answer string) {
	if !g.SubmitAnswer(puzzleID, answer) {
		console.ShowDenied(gotext.Get("Terminal %s rejected the answer.", puzzleID))
		return
	}
	if g.Portals.IsActive(puzzleID) {
		g.AddMessage(gotext.Get("Terminal %s accepted: a portal opened in the wall.", puzzleID))
	} else {
		g.AddMessage(gotext.Get("Terminal %s accepted, but no wall segment was available.", puzzleID))
	}
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	mapFile := flag.String("mapfile", "", "write the final map and claim legend to this file")
	autoSolve := flag.Bool("autosolve", false, "solve every demo puzzle and exit")
	flag.Parse()

	initLocale()
	renderer.InitColors()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	console := renderer.NewConsole()
	g := buildGame(cfg, console)
	printState(g, console)

	if *autoSolve {
		for i := 1; ; i++ {
			id := fmt.Sprintf("puzzle-%d", i)
			p, found := g.Puzzle(id)
			if !found {
				break
			}
			submit(g, console, id, p.Answer)
		}
		printState(g, console)
	} else {
		runInteractive(g, console)
	}

	if *mapFile != "" {
		if err := devtools.WriteMapFile(g, *mapFile); err != nil {
			fmt.Fprintf(os.Stderr, "mapfile: %v\n", err)
			os.Exit(1)
		}
	}
}
