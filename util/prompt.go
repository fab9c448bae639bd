package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	input  = bufio.NewReader(os.Stdin)
	output io.Writer = os.Stdout
)

// SetIO redirects prompts, for callers that do not talk to a terminal.
func SetIO(r io.Reader, w io.Writer) {
	input = bufio.NewReader(r)
	output = w
}

func readLine() (string, bool) {
	response, err := input.ReadString('\n')
	if err != nil && (err != io.EOF || response == "") {
		return "", false
	}
	return strings.TrimSpace(response), true
}

func PromptString(prompt string, def string) string {
	fmt.Fprintf(output, "%s (%s): ", prompt, def)

	response, ok := readLine()
	if !ok || response == "" {
		return def
	}

	return response
}

// PromptInt asks for a number, falling back to def on empty or invalid
// input.
func PromptInt(prompt string, def int) int {
	response := PromptString(prompt, strconv.Itoa(def))
	n, err := strconv.Atoi(response)
	if err != nil {
		fmt.Fprintf(output, "%q is not a number, using %d\n", response, def)
		return def
	}
	return n
}

func PromptYN(prompt string, def bool) bool {
	if def {
		fmt.Fprintf(output, "%s (Y/n): ", prompt)
	} else {
		fmt.Fprintf(output, "%s (y/N): ", prompt)
	}

	response, ok := readLine()
	if !ok || response == "" {
		return def
	}

	return strings.ToLower(response) == "y"
}
