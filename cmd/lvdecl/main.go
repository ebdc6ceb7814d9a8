// Command lvdecl declines Latvian nouns from the command line.
//
//	lvdecl decline Aplis
//	lvdecl form suns genitive plural
//	lvdecl palatalize apl
//	lvdecl groups D6
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvdecl:", err)
		os.Exit(1)
	}
}
