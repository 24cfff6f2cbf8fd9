package main

import "revo-utils/cmd"

func main() {
	cmd.Execute()
}
