package main

import (
	"fmt"
	"os"

	"github.com/mdpsolve/mdpsolve/benchmarks"
)

func main() {
	rootCommand := benchmarks.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
