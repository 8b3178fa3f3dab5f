package main

import "fmt"

// Version is the build version stamped in at link time.
var Version = "develop"

// Tag is the latest commit tag stamped in at link time.
var Tag = "0.0.1-rc"

func main() {
	fmt.Printf("advice-service version: %s (tag %s)\n", Version, Tag)
}
