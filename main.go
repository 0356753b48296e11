package main

import "precinct-reconciler/cmd"

func main() {
	cmd.Execute()
}
