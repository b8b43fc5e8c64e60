package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"prodp/internal/lock"
	"prodp/internal/notes"
	"prodp/internal/notes/service"
)

func (r *runner) runAdd(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.err, "Error: note title required")
		fmt.Fprintln(r.err, `Usage: prodp note add "Title" "Content"`)
		return 1
	}

	title := args[0]
	var content string
	if len(args) > 1 {
		content = strings.Join(args[1:], " ")
	} else {
		data, err := io.ReadAll(r.in)
		if err != nil {
			fmt.Fprintf(r.err, "Error reading content: %v\n", err)
			return 1
		}
		content = string(data)
	}

	if _, err := r.svc.Add(title, content); err != nil {
		fmt.Fprintf(r.err, "Error adding note: %v\n", err)
		return 1
	}

	fmt.Fprintf(r.out, "Added: %s\n", title)
	return 0
}

func (r *runner) runList(args []string) int {
	all := r.svc.List()
	if len(all) == 0 {
		fmt.Fprintln(r.out, "No notes yet.")
		return 0
	}

	for i, n := range all {
		r.printNote(i, n)
	}

	fmt.Fprintf(r.out, "\n%d note(s)\n", len(all))
	return 0
}

func (r *runner) runView(args []string) int {
	index, note, ok := r.noteArg(args, "view")
	if !ok {
		return 1
	}

	var challenge lock.Challenge
	var input string
	if note.Locked {
		challenge = newChallenge()
		var err error
		input, err = r.askChallenge(challenge)
		if err != nil {
			fmt.Fprintf(r.err, "Error: %v\n", err)
			return 1
		}
	}

	shown, err := r.svc.View(index, challenge, input)
	if err != nil {
		return r.fail(err)
	}

	fmt.Fprintf(r.out, "Title: %s\n\n%s\n", shown.Title, shown.Content)
	return 0
}

func (r *runner) runEdit(args []string) int {
	index, note, ok := r.noteArg(args, "edit")
	if !ok {
		return 1
	}

	if note.Locked {
		return r.fail(service.ErrLocked)
	}

	// No defaults from the note: usage output must not echo its content
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(r.err)
	titleFlag := fs.String("title", "", "New title (unchanged when omitted)")
	contentFlag := fs.String("content", "", "New content (unchanged when omitted)")
	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}

	title, content := note.Title, note.Content
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			title = *titleFlag
		case "content":
			content = *contentFlag
		}
	})

	if err := r.svc.Edit(index, title, content); err != nil {
		return r.fail(err)
	}

	fmt.Fprintf(r.out, "Updated: %s\n", title)
	return 0
}

func (r *runner) runDelete(args []string) int {
	index, note, ok := r.noteArg(args, "delete")
	if !ok {
		return 1
	}

	if note.Locked {
		return r.fail(service.ErrLocked)
	}

	if !r.cfg.DisableConfirmation {
		confirmed, err := r.confirm("Are you sure you want to delete this note?")
		if err != nil {
			fmt.Fprintf(r.err, "Error: %v\n", err)
			return 1
		}
		if !confirmed {
			fmt.Fprintln(r.out, "Cancelled.")
			return 0
		}
	}

	if err := r.svc.Delete(index); err != nil {
		return r.fail(err)
	}

	fmt.Fprintf(r.out, "Deleted: %s\n", note.Title)
	return 0
}

func (r *runner) runLock(args []string) int {
	index, note, ok := r.noteArg(args, "lock")
	if !ok {
		return 1
	}

	if note.Locked {
		return r.fail(service.ErrLocked)
	}

	confirmed, err := r.confirm("Are you sure you want to lock this note?")
	if err != nil {
		fmt.Fprintf(r.err, "Error: %v\n", err)
		return 1
	}
	if !confirmed {
		fmt.Fprintln(r.out, "Cancelled.")
		return 0
	}

	if err := r.svc.Lock(index); err != nil {
		return r.fail(err)
	}

	fmt.Fprintf(r.out, "Locked: %s\n", note.Title)
	return 0
}

func (r *runner) runUnlock(args []string) int {
	index, note, ok := r.noteArg(args, "unlock")
	if !ok {
		return 1
	}

	if !note.Locked {
		fmt.Fprintln(r.out, "This note is already unlocked.")
		return 0
	}

	challenge := newChallenge()
	input, err := r.askChallenge(challenge)
	if err != nil {
		fmt.Fprintf(r.err, "Error: %v\n", err)
		return 1
	}

	if err := r.svc.Unlock(index, challenge, input); err != nil {
		return r.fail(err)
	}

	fmt.Fprintf(r.out, "Unlocked: %s\n", note.Title)
	return 0
}

func (r *runner) runExport(args []string) int {
	index, note, ok := r.noteArg(args, "export")
	if !ok {
		return 1
	}

	path := service.DefaultExportName(note)
	if len(args) > 1 {
		path = args[1]
	}

	if err := r.svc.ExportText(index, path); err != nil {
		return r.fail(err)
	}

	fmt.Fprintf(r.out, "Saved %s to %s\n", note.Title, path)
	return 0
}

func (r *runner) runImport(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.err, "Error: file path required")
		fmt.Fprintln(r.err, "Usage: prodp note import <path> [title]")
		return 1
	}

	title := ""
	if len(args) > 1 {
		title = strings.Join(args[1:], " ")
	}

	note, err := r.svc.ImportText(args[0], title)
	if err != nil {
		return r.fail(err)
	}

	fmt.Fprintf(r.out, "Imported: %s\n", note.Title)
	return 0
}

// noteArg resolves the 1-based note number in args[0]
func (r *runner) noteArg(args []string, command string) (int, notes.Note, bool) {
	if len(args) == 0 {
		fmt.Fprintln(r.err, "Error: note number required")
		fmt.Fprintf(r.err, "Usage: prodp note %s <n>\n", command)
		return 0, notes.Note{}, false
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.err, "Error: invalid note number: %s\n", args[0])
		return 0, notes.Note{}, false
	}

	index := n - 1
	note, err := r.svc.Get(index)
	if err != nil {
		fmt.Fprintf(r.err, "Error: no note number %d\n", n)
		return 0, notes.Note{}, false
	}
	return index, note, true
}

func (r *runner) askChallenge(challenge lock.Challenge) (string, error) {
	fmt.Fprintf(r.out, "%s\n%s\n(exact match, spaces count)\n> ", lock.Prompt(), challenge.String())
	return r.readLine()
}

func (r *runner) confirm(question string) (bool, error) {
	fmt.Fprintf(r.out, "%s [y/N] ", question)
	answer, err := r.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// readLine returns one line without its line ending. Nothing else is
// trimmed, challenge answers are compared verbatim.
func (r *runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.New("no input")
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (r *runner) fail(err error) int {
	switch {
	case errors.Is(err, service.ErrChallengeFailed):
		fmt.Fprintln(r.err, "Incorrect String: The string you entered is incorrect. Please try again.")
	case errors.Is(err, service.ErrLocked):
		fmt.Fprintln(r.err, "Error: this note is locked, unlock it first")
	default:
		fmt.Fprintf(r.err, "Error: %v\n", err)
	}
	return 1
}

func (r *runner) printNote(index int, n notes.Note) {
	status := " "
	detail := notes.Preview(n.Content)
	if n.Locked {
		status = "L"
		detail = "(locked)"
	}

	fmt.Fprintf(r.out, "%3d [%s] %s\n", index+1, status, n.Title)
	if detail != "" {
		fmt.Fprintf(r.out, "        %s\n", detail)
	}
}
