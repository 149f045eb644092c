package main

import "github.com/jmin1219/taskflow/cmd"

func main() {
	cmd.Execute()
}
