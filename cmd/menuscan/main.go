package main

import "github.com/plateaulabs/menuscan/cmd/menuscan/cmd"

func main() {
	cmd.Execute()
}
