package main

import "github.com/merit-guild/meritbank/cmd/meritbank/cmd"

func main() {
	cmd.Execute()
}
