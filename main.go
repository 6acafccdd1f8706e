package main

import "github.com/jsphweid/articulex/cmd"

func main() {
	cmd.Execute()
}
