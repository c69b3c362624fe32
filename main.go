/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/typegraph/typegraph/cmd"

func main() {
	cmd.Execute()
}
