package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-footy-stats/internal/loader"
	"github.com/pable/go-footy-stats/internal/model"
	"github.com/pable/go-footy-stats/internal/report"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Open a persistent session against the data directory. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	store := loader.NewStore(dataDir)

	cGreeting.Println("footystats shell")
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("footystats")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		cmd, args := tokens[0], tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "competitions":
			shellCompetitions(store)
		case "matches":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: matches <competition>")
				continue
			}
			shellMatches(store, strings.Join(args, " "))
		case "report":
			competition := cfg.Competition
			if len(args) > 0 {
				competition = strings.Join(args, " ")
			}
			shellReport(store, competition)
		case "summary":
			shellSummary(store)
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", cmd)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"competitions", "list all competition editions"},
		{"matches <competition>", "list a competition's matches by season"},
		{"report [competition]", "full study of a competition (default from config)"},
		{"summary", "count stored records"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-24s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func shellCompetitions(store *loader.Store) {
	comps, err := store.Competitions()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(comps) == 0 {
		cMuted.Println("No competitions stored yet.")
		return
	}
	report.PrintCompetitions(os.Stdout, comps)
}

func shellMatches(store *loader.Store, competition string) {
	all, err := store.Matches()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	var matches []model.Match
	for _, m := range all {
		if m.Competition == competition {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		cMuted.Printf("No matches for %q.\n", competition)
		return
	}
	report.PrintMatchesBySeason(os.Stdout, competition, matches)
}

func shellReport(store *loader.Store, competition string) {
	resolved, err := buildStudy(store, competition, cfg.MinSeason, false)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	printStudy(resolved, competition, cfg.TopScorers)
}

func shellSummary(store *loader.Store) {
	sum, err := store.Count()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stdout, "competitions: %d  matches: %d  events: %d  lineups: %d\n",
		sum.Competitions, sum.Matches, sum.Events, sum.Lineups)
}
