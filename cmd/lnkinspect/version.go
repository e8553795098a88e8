package main

import "fmt"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionString() string {
	return fmt.Sprintf("lnkinspect %s (commit %s, built %s)", version, commit, date)
}
