package i18n

// EnMessages is the English catalog and the fallback for every other locale.
var EnMessages = map[string]string{
	"app.title": "Notes",

	"menu.title": "Menu",
	"menu.home":  "Home",
	"menu.tasks": "Tasks",
	"menu.about": "About",

	"form.title.label":       "Task title",
	"form.title.placeholder": "Enter the task title...",
	"form.desc.label":        "Description",
	"form.desc.placeholder":  "Enter the task details...",
	"form.submit":            "Add task",

	"task.mark_done":   "Done",
	"task.mark_undone": "Undo",
	"task.delete":      "Delete",
	"task.empty":       "No tasks yet.",
	"task.count":       "%d task(s), %d done",

	"alert.empty_title": "Please enter a title for the task",
	"alert.hint":        "enter: OK",
	"confirm.delete":    "Are you sure you want to delete this task?",
	"confirm.hint":      "y: yes · n: no",

	"status.added":    "Added task #%d",
	"status.toggled":  "Toggled task #%d",
	"status.deleted":  "Deleted task #%d",
	"status.declined": "Delete cancelled",

	"help.form": "enter add · tab next field · esc list · ctrl+c quit",
	"help.list": "↑/↓ move · space toggle · d delete · tab focus · F1-F3 pages · q quit",

	"footer.default": "Copyright © %d %s",

	"about.body": `# Notes

A small task list for the terminal.

- Type a **title** and an optional **description**, then press *enter*.
- Press *space* on a task to mark it done, again to undo.
- Press *d* to delete a task. You will be asked to confirm.

Tasks live in memory only and are gone when the program exits.
`,

	"shell.welcome":       "taskpad shell. Type 'help' for commands.",
	"shell.title_prompt":  "Title: ",
	"shell.desc_prompt":   "Description: ",
	"shell.confirm":       "%s [y/N]: ",
	"shell.unknown":       "unknown command %q (try 'help')",
	"shell.not_found":     "no task with id %d",
	"shell.add_cancelled": "Add cancelled",
	"shell.exported":      "wrote %s (%d bytes)",

	"seed.1.title": "Read a book",
	"seed.1.desc":  "Go + Bubble Tea + Lip Gloss",
	"seed.2.title": "Write code",
	"seed.2.desc":  "Build the class project",
	"seed.3.title": "Ship the app",
	"seed.3.desc":  "Publish the release on GitHub",
}
