// Command burger prints the house burger, or serves burgers over HTTP.
package main

import "github.com/sarchlab/burger/cli"

func main() {
	cli.Execute()
}
