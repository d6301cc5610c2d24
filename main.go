package main

import "github.com/dagimg/loan-management/cmd"

func main() {
	cmd.Execute()
}
