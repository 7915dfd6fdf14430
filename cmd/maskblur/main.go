// Command maskblur blurs 8-bit coverage masks from the command line.
package main

import "github.com/gogpu/maskblur/internal/cli"

func main() {
	cli.Execute()
}
