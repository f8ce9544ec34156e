package main

import "github/chapool/evm-gateway/cmd"

func main() {
	cmd.Execute()
}
