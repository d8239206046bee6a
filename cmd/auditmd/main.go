package main

import "github.com/aalvaropc/auditmd/internal/cli"

func main() {
	cli.Execute()
}
