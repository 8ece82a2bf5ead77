// Package main is the entry point for the footystats CLI tool, which loads
// StatsBomb-style open football data and computes competition statistics.
package main

import "github.com/pable/go-footy-stats/cmd"

func main() {
	cmd.Execute()
}
