// Command insights prints La Liga 2015/16 tables and reports from StatsBomb open data.
package main

import "github.com/riskibarqy/laliga-insights/internal/cli"

func main() {
	cli.Execute()
}
