package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"prodp/internal/config"
	"prodp/internal/lock"
	"prodp/internal/notes/service"
)

// Swapped out by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	newChallenge = lock.NewChallenge
)

type runner struct {
	svc service.NoteService
	cfg *config.Config
	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

// Run executes the CLI with the given arguments.
// The first argument should be the namespace ("note").
func Run(args []string, svc service.NoteService, cfg *config.Config) int {
	r := &runner{
		svc: svc,
		cfg: cfg,
		in:  bufio.NewReader(stdin),
		out: stdout,
		err: stderr,
	}

	if len(args) == 0 {
		r.printUsage()
		return 1
	}

	namespace := args[0]
	subArgs := args[1:]

	switch namespace {
	case "note", "notes", "n":
		return r.runNoteCommand(subArgs)
	case "help", "-h", "--help":
		r.printUsage()
		return 0
	default:
		fmt.Fprintf(r.err, "Unknown command: %s\n", namespace)
		r.printUsage()
		return 1
	}
}

func (r *runner) runNoteCommand(args []string) int {
	if len(args) == 0 {
		r.printNoteUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		return r.runAdd(cmdArgs)
	case "list", "ls", "l":
		return r.runList(cmdArgs)
	case "view", "show", "v":
		return r.runView(cmdArgs)
	case "edit", "e":
		return r.runEdit(cmdArgs)
	case "delete", "rm", "del":
		return r.runDelete(cmdArgs)
	case "lock":
		return r.runLock(cmdArgs)
	case "unlock":
		return r.runUnlock(cmdArgs)
	case "export", "save":
		return r.runExport(cmdArgs)
	case "import":
		return r.runImport(cmdArgs)
	case "help", "-h", "--help":
		r.printNoteUsage()
		return 0
	default:
		fmt.Fprintf(r.err, "Unknown note command: %s\n", command)
		r.printNoteUsage()
		return 1
	}
}

func (r *runner) printUsage() {
	fmt.Fprintln(r.out, `prodp - Your Production++ Notepad

Usage: prodp [flags] [command] [arguments]

Commands:
  note        Note management commands

Flags:
  -f, --file <path>      Notes file (default notes.json)
      --settings <path>  Settings file (default settings.json)

Running prodp without arguments launches the interactive TUI.
Use "prodp note help" for note subcommands.`)
}

func (r *runner) printNoteUsage() {
	fmt.Fprintln(r.out, `prodp note - Note management commands

Usage: prodp note <command> [arguments]

Notes are addressed by their position in "prodp note list" (starting at 1).

Commands:
  add, a       Add a note (content is read from stdin when omitted)
               prodp note add "Title" "Content"

  list, ls, l  List notes

  view, v      Show a note; locked notes ask you to retype a challenge
               prodp note view <n>

  edit, e      Edit an unlocked note
               prodp note edit <n> --title "New" --content "Text"

  delete, rm   Delete an unlocked note
               prodp note delete <n>

  lock         Lock a note
  unlock       Unlock a note by retyping the challenge string

  export       Save a note's content as a text file
               prodp note export <n> [path]

  import       Add a note from a text file
               prodp note import <path> [title]

  help         Show this help message`)
}
