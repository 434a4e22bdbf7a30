package main

import (
	"os"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/cmd/lawncare/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
