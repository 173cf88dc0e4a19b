// Command arrlist is the command-line client for the arrlistd API.
package main

func main() {
	Execute()
}
