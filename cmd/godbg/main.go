// Command godbg is a minimal host around the cpu package: it loads a
// hex-encoded program at a chosen origin and drops into the interactive
// single-step debugger.
package main

import (
	"encoding/hex"
	"flag"
	"log"

	"m6502/cpu"
)

func main() {
	origin := flag.Uint("origin", 0x8000, "address to load the program at")
	program := flag.String("program", "a905008600", "hex-encoded program bytes")
	flag.Parse()

	code, err := hex.DecodeString(*program)
	if err != nil {
		log.Fatalf("godbg: invalid -program hex string: %v", err)
	}
	if len(code) == 0 {
		log.Fatal("godbg: -program must not be empty")
	}

	c := cpu.New()
	if err := c.Debug(code, uint16(*origin)); err != nil {
		log.Fatalf("godbg: debugger exited with error: %v", err)
	}
}
