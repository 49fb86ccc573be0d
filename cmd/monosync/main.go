// Command monosync keeps the package.json manifests of a monorepo consistent.
package main

import "github.com/bolasblack/monosync/internal/cli"

func main() {
	cli.Execute()
}
