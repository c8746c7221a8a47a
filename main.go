package main

import "github.com/airplusnepal/site/cmd"

func main() {
	cmd.Execute()
}
