package main

import "github.com/anchore/libversion/cmd"

func main() {
	cmd.Execute()
}
