package main

import (
	"github.com/dreamerjackson/harvester/cmd"
)

func main() {
	cmd.Execute()
}
