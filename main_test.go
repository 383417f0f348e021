package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"dis86": main1,
		"unhex": unhexMain,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
	})
}

// unhexMain writes whitespace-separated hex byte text out as a binary
// file, so scripts can carry instruction bytes as plain text.
func unhexMain() int {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: unhex <hex file> <bin file>")
		return 2
	}
	text, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	var buf []byte
	for _, field := range strings.Fields(string(text)) {
		v, err := strconv.ParseUint(field, 16, 8)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		buf = append(buf, byte(v))
	}
	if err := os.WriteFile(os.Args[2], buf, 0o666); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
