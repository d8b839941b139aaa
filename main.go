package main

import "github.com/dreedsanders/EggyCommutes-sub000/cmd"

func main() {
	cmd.Execute()
}
