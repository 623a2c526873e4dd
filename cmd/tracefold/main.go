// Command tracefold learns control-flow automata from execution traces.
package main

func main() {
	Execute()
}
