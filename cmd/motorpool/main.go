// Package main provides the motorpool CLI.
package main

import "github.com/mesh-intelligence/motorpool/internal/cli"

func main() {
	cli.Execute()
}
