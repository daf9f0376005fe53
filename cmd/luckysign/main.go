// Package main provides the luckysign command line tool.
package main

import "github.com/listenupapp/luckysign/internal/cli"

func main() {
	cli.Execute()
}
