package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(main1())
}

func main1() int {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <8086 binary file>\n", os.Args[0])
		return 2
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Printf("; %s\n", path)
	fmt.Printf("bits 16\n")

	d := &disassembler{data: data}
	for d.hasMore() {
		in, err := d.nextInstruction()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(in)
	}

	return 0
}
