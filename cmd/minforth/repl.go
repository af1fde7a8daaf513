package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
	"nickandperla.net/minforth/pkg/minforth"
)

const prompt = "ok> "

func printBanner() {
	fmt.Println("minforth REPL (Ctrl+D to exit)")
	fmt.Println()
	fmt.Println("Words: DUP DROP SWAP CL ABS IF ELSE THEN + - * / MOD . = < > : ;")
	fmt.Println("Meta:  .words  .stack  bye")
	fmt.Println()
}

func runREPL(runtime *minforth.Runtime) {
	printBanner()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Not a TTY, fall back to basic mode
		runBasicREPL(runtime)
		return
	}

	runRawREPL(runtime)
}

// handleMeta intercepts REPL-level commands that are not part of the
// engine vocabulary. Returns (handled, quit).
func handleMeta(runtime *minforth.Runtime, line string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "bye":
		return true, true
	case ".words":
		words := runtime.Words()
		if len(words) == 0 {
			fmt.Println("(no user words)")
		} else {
			fmt.Println(strings.Join(words, " "))
		}
		return true, false
	case ".stack":
		cells := runtime.Stack()
		if len(cells) == 0 {
			fmt.Println("(empty)")
			return true, false
		}
		parts := make([]string, len(cells))
		for i, v := range cells {
			parts[i] = fmt.Sprint(v)
		}
		// Top of stack first.
		fmt.Println(strings.Join(parts, " "))
		return true, false
	}
	return false, false
}

// runBasicREPL handles non-TTY input (piped input).
func runBasicREPL(runtime *minforth.Runtime) {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(prompt)

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(line) == "" {
			continue
		}
		if handled, quit := handleMeta(runtime, line); handled {
			if quit {
				return
			}
			continue
		}

		result, err := runtime.Eval(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if result != "" {
			fmt.Println(result)
		}
	}
}

// runRawREPL handles TTY input with line editing and history recall.
func runRawREPL(runtime *minforth.Runtime) {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set raw mode: %v\n", err)
		runBasicREPL(runtime)
		return
	}
	defer term.Restore(fd, oldState)

	// Seed in-session recall from the persisted transcript, oldest
	// first so up-arrow walks backwards in time.
	var history []string
	if entries, err := runtime.History(50); err == nil {
		for i := len(entries) - 1; i >= 0; i-- {
			history = append(history, entries[i].Line)
		}
	}

	for {
		fmt.Print(prompt)

		line, eof := readLineRaw(fd, history)
		if eof {
			fmt.Print("\r\n")
			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		history = append(history, line)

		if handled, quit := handleMeta(runtime, line); handled {
			if quit {
				return
			}
			continue
		}

		result, err := runtime.Eval(line)
		if err != nil {
			fmt.Printf("Error: %v\r\n", err)
			continue
		}
		if result != "" {
			// Replace newlines with \r\n for raw mode display
			result = strings.ReplaceAll(result, "\n", "\r\n")
			fmt.Print(result + "\r\n")
		}
	}
}

// readLineRaw reads a line in raw mode with cursor editing and history
// navigation. Returns the line and whether EOF was encountered.
func readLineRaw(fd int, history []string) (string, bool) {
	var line []rune
	cursor := 0
	histPos := len(history) // one past the newest entry
	pending := ""           // line being edited before history recall
	buf := make([]byte, 1)

	// Helper to redraw line from cursor position
	redrawFromCursor := func() {
		fmt.Print("\x1b[K")
		for i := cursor; i < len(line); i++ {
			fmt.Print(string(line[i]))
		}
		if cursor < len(line) {
			fmt.Printf("\x1b[%dD", len(line)-cursor)
		}
	}

	// Replace the whole visible line (history recall).
	replaceLine := func(text string) {
		fmt.Print("\r\x1b[K")
		fmt.Print(prompt)
		fmt.Print(text)
		line = []rune(text)
		cursor = len(line)
	}

	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return string(line), true
		}

		b := buf[0]

		switch b {
		case 0x04: // Ctrl+D
			if len(line) == 0 {
				return "", true
			}
			if cursor < len(line) {
				line = append(line[:cursor], line[cursor+1:]...)
				redrawFromCursor()
			}

		case 0x03: // Ctrl+C
			fmt.Print("^C\r\n")
			return "", false

		case 0x0d, 0x0a: // Enter (CR or LF)
			fmt.Print("\r\n")
			return string(line), false

		case 0x7f, 0x08: // Backspace (DEL or BS)
			if cursor > 0 {
				cursor--
				line = append(line[:cursor], line[cursor+1:]...)
				fmt.Print("\b")
				redrawFromCursor()
			}

		case 0x1b: // ESC - arrow key sequence
			nextBuf := make([]byte, 1)
			n, err := os.Stdin.Read(nextBuf)
			if err != nil || n == 0 {
				continue
			}
			if nextBuf[0] != '[' {
				continue
			}
			arrowBuf := make([]byte, 1)
			n, err = os.Stdin.Read(arrowBuf)
			if err != nil || n == 0 {
				continue
			}

			switch arrowBuf[0] {
			case 'A': // Up arrow - recall older history
				if histPos > 0 {
					if histPos == len(history) {
						pending = string(line)
					}
					histPos--
					replaceLine(history[histPos])
				}
			case 'B': // Down arrow - recall newer history
				if histPos < len(history) {
					histPos++
					if histPos == len(history) {
						replaceLine(pending)
					} else {
						replaceLine(history[histPos])
					}
				}
			case 'C': // Right arrow
				if cursor < len(line) {
					cursor++
					fmt.Print("\x1b[C")
				}
			case 'D': // Left arrow
				if cursor > 0 {
					cursor--
					fmt.Print("\x1b[D")
				}
			case '3': // Delete key: ESC [ 3 ~
				delBuf := make([]byte, 1)
				os.Stdin.Read(delBuf)
				if delBuf[0] == '~' && cursor < len(line) {
					line = append(line[:cursor], line[cursor+1:]...)
					redrawFromCursor()
				}
			}

		case 0x01: // Ctrl+A - beginning of line
			if cursor > 0 {
				fmt.Printf("\x1b[%dD", cursor)
				cursor = 0
			}

		case 0x05: // Ctrl+E - end of line
			if cursor < len(line) {
				fmt.Printf("\x1b[%dC", len(line)-cursor)
				cursor = len(line)
			}

		case 0x0b: // Ctrl+K - kill to end of line
			if cursor < len(line) {
				line = line[:cursor]
				fmt.Print("\x1b[K")
			}

		case 0x15: // Ctrl+U - kill to beginning of line
			if cursor > 0 {
				fmt.Printf("\x1b[%dD", cursor)
				line = line[cursor:]
				cursor = 0
				redrawFromCursor()
			}

		default:
			if b >= 0x20 && b < 0x7f {
				r := rune(b)
				newLine := make([]rune, 0, len(line)+1)
				newLine = append(newLine, line[:cursor]...)
				newLine = append(newLine, r)
				newLine = append(newLine, line[cursor:]...)
				line = newLine
				cursor++
				fmt.Print(string(r))
				if cursor < len(line) {
					redrawFromCursor()
				}
			}
		}
	}
}
