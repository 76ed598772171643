// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ManifestParseErrorId
	UnknownSettingId
	ValidationFailedId
	EnvImportFailedId
	ExportFileExistsId
	SessionAbortedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the dps configuration file.

## Configuration file locations:
- Linux: ~/.config/dps/config.cue
- macOS: ~/Library/Application Support/dps/config.cue
- Windows: %APPDATA%\dps\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/dps/config.cue
~~~

## Example configuration:
~~~cue
env_prefix: "DPS"

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to load the settings manifest!

The built-in preset manifest could not be parsed. This is a packaging
defect, not something your input caused.

## Things you can try:
- Reinstall dps from a release build
- Report the failure with the error output above`,
	}

	unknownSettingIssue = &Issue{
		id: UnknownSettingId,
		mdMsg: `
# Unknown setting!

The setting name you specified is not declared by any preset.

## Things you can try:
- List all declared settings:
~~~
$ dps get
~~~

- Check for typos in the setting name (names are UPPER_SNAKE_CASE)`,
	}

	validationFailedIssue = &Issue{
		id: ValidationFailedId,
		mdMsg: `
# Settings did not validate!

One or more settings hold values that fail their declared constraints.

## Things you can try:
- Review each message above; the format is [preset] SETTING: problem
- Fix values one at a time:
~~~
$ dps set SETTING VALUE
~~~

- Or walk through the interactive session:
~~~
$ dps run
~~~`,
	}

	envImportFailedIssue = &Issue{
		id: EnvImportFailedId,
		mdMsg: `
# Failed to import an environment file!

The file passed to the import command could not be read as a POSIX
shell environment file.

## Expected file shape:
~~~sh
export DPS_HOSTNAME="node-01"
export DPS_SSH_PORT="22"
~~~

## Things you can try:
- Check the file for shell syntax errors
- Generate a well-formed file with the export command:
~~~
$ dps export -o settings.env
~~~`,
	}

	exportFileExistsIssue = &Issue{
		id: ExportFileExistsId,
		mdMsg: `
# Export target already exists!

Refusing to overwrite the existing file without confirmation.

## Things you can try:
- Re-run and confirm the overwrite prompt
- Export to a different file:
~~~
$ dps export -o other.env
~~~`,
	}

	sessionAbortedIssue = &Issue{
		id: SessionAbortedId,
		mdMsg: `
# Session aborted!

The interactive session ended without confirmation. No settings were
exported.

## Things you can try:
- Start over:
~~~
$ dps run
~~~

- Or skip the interactive session entirely by preparing an environment
  file and importing it:
~~~
$ dps import settings.env
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		manifestParseErrorIssue.Id(): manifestParseErrorIssue,
		unknownSettingIssue.Id():     unknownSettingIssue,
		validationFailedIssue.Id():   validationFailedIssue,
		envImportFailedIssue.Id():    envImportFailedIssue,
		exportFileExistsIssue.Id():   exportFileExistsIssue,
		sessionAbortedIssue.Id():     sessionAbortedIssue,
	}
)

func Values() []*Issue {
	return slices.Collect(maps.Values(issues))
}

func Get(id Id) *Issue {
	return issues[id]
}
