// Package main is the entry point for the loggerfix CLI.
package main

import "loggerfix.dev/pkg/loggerfix/cmd"

func main() {
	cmd.Execute()
}
