package main

import "shireesh.com/indium/cmd"

func main() {
	cmd.Execute()
}
