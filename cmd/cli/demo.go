package main

import (
	"os"

	"sleeper-luck/internal/report"
)

type demoCmd struct{}

func (d *demoCmd) Run(_ *globalCmd) error {
	printReport(os.Stdout, report.Demo())
	return nil
}
