package main

import "github.com/vibast-solutions/ms-go-doclocks/cmd"

func main() {
	cmd.Execute()
}
