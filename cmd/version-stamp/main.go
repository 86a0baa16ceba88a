package main

import "github.com/oshokin/version-stamp/cmd/version-stamp/cmd"

func main() {
	cmd.Execute()
}
