// Command arenabench times arena allocation against plain heap allocation
// across a range of element sizes.
package main

func main() {
	execute()
}
