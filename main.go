package main

import "github.com/rpgo/finplan/cmd"

func main() {
	cmd.Execute()
}
