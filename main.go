package main

import "github.com/kokko-ng/sql-exercises/cmd"

func main() {
	cmd.Execute()
}
