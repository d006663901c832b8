// Package main is the entry point for the trainings API binaries: the HTTP
// server, the queue worker and the migration runner.
package main

import "github.com/fitstack/trainings-api/internal/cmd"

func main() {
	cmd.Execute()
}
