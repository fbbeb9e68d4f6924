package main

import "github.com/clems4ever/diffable/cmd"

func main() {
	cmd.Execute()
}
