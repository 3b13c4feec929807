// Package editor provides a slash-command adapter for editor
// assistants. Each command renders a markdown response the editor can
// insert into an assistant context, with labelled sections and
// argument completion for the commands that take a name.
package editor
