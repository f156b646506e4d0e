package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

const helpText = `Available commands:
  ping
  upload <module> <file>...            upload files into TEMPS/<module>
  pending                              show the local upload journal
  commit <module> [ref_type] [ref_id] [--keep]
                                       record uploads, --keep leaves them in TEMPS
  list <ref_type> [ref_id]
  download <file_id> <key> <dest>
  delete <id> <file_path>
  discard <key>
  exit | quit`

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	Ping(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	Pending(ctx context.Context) error
	Commit(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Discard(ctx context.Context, args []string) error
}

// runREPL reads commands line by line until EOF, "exit" or "quit". Command
// errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("fk> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "ping":
			err = a.Ping(ctx)
		case "upload":
			err = a.Upload(ctx, args)
		case "pending":
			err = a.Pending(ctx)
		case "commit":
			err = a.Commit(ctx, args)
		case "l", "list":
			err = a.List(ctx, args)
		case "download":
			err = a.Download(ctx, args)
		case "delete":
			err = a.Delete(ctx, args)
		case "discard":
			err = a.Discard(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
