package main

import "github.com/xrsl/cvb/cmd"

func main() {
	cmd.Execute()
}
