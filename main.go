// main.go
package main

import "github.com/medicore-hms/hmsctl/cli"

func main() {
	cli.Execute()
}
