package main

import (
	"github.com/factoryops/adftrigger/cmd"
)

func main() {
	cmd.Execute()
}
