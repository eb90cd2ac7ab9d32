// reversi-local is a terminal application to play Reversi with a friend.
package main

import "reversi-local/cli"

func main() {
	cli.Execute()
}
