package main

import "github.com/hypertool/hypertool/cmd/hyperctl/cmd"

func main() {
	cmd.Execute()
}
