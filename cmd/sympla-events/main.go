package main

import "github.com/bernardocrvg/eventos-sympla-penha/internal/cli"

func main() {
	cli.Execute()
}
