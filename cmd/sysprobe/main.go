// Package main is the entry point for sysprobe.
package main

import "sysprobe/cmd/sysprobe/cmd"

func main() {
	cmd.Execute()
}
