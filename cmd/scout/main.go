package main

import "github.com/yapay-ai/model-scout/internal/cli"

func main() {
	cli.Execute()
}
