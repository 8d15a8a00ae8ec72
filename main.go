package main

import "autoviz/cmd"

func main() {
	cmd.Execute()
}
