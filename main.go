package main

import "github.com/theirongolddev/print-calc/cmd"

func main() {
	cmd.Execute()
}
