package main

import "atelier_backend/internal/cli"

func main() {
	cli.Execute()
}
