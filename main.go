package main

import "livecast/cmd"

func main() {
	cmd.Execute()
}
