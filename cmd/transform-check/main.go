// Package main provides transform-check, a small developer utility that
// validates call-tree transform tags, e.g. ones copied out of shared URLs.
package main

import (
	"fmt"
	"os"

	"state-binder/transform"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: transform-check TAG [TAG...]")
		os.Exit(2)
	}

	ok := true
	for _, arg := range args {
		t, valid := transform.Parse(arg)
		if valid {
			fmt.Printf("%s: ok, short key %q, %s\n", t, t.ShortKey(), t.Category())
			continue
		}

		ok = false
		if hint, found := transform.Suggest(arg); found {
			fmt.Printf("%s: unrecognized, did you mean %q?\n", arg, hint)
		} else {
			fmt.Printf("%s: unrecognized\n", arg)
		}
	}

	if !ok {
		os.Exit(1)
	}
}
