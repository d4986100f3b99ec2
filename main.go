package main

import "grantwatch/cmd"

func main() {
	cmd.Execute()
}
