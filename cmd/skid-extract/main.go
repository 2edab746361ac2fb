package main

import "skid-extractor/internal/cli"

func main() {
	cli.Execute()
}
