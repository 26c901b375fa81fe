package main

import (
	"github.com/onur-cay/comingsoon/cmd/comingsoon/cmd"
)

func main() {
	cmd.Execute()
}
