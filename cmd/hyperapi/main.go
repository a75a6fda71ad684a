package main

import "github.com/hypertool/hypertool/cmd/hyperapi/cmd"

func main() {
	cmd.Execute()
}
