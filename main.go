package main

import (
	"chainledger/cmd"
	"fmt"
	"os"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("service run into an error: %s", err)
		os.Exit(1)
	}
}
