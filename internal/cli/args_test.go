package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlainFileArguments(t *testing.T) {
	p := Parse([]string{"a.js", "b.js"})
	require.Len(t, p.Files, 2)
	assert.Equal(t, "a.js", p.Files[0].Path)
	assert.Equal(t, LanguageDefault, p.Files[0].Language)
	assert.Empty(t, p.Warnings)
	assert.Empty(t, p.UnrecognizedOptions)
}

func TestLanguageAppliesOnlyToNextFile(t *testing.T) {
	p := Parse([]string{"--language=experimental-typescript", "a.ts", "b.js"})
	require.Len(t, p.Files, 2)
	assert.Equal(t, LanguageTypeScript, p.Files[0].Language)
	assert.Equal(t, LanguageDefault, p.Files[1].Language)
}

func TestLanguageWithNoFollowingFileWarns(t *testing.T) {
	p := Parse([]string{"--language=javascript"})
	require.Len(t, p.Warnings, 1)
	assert.Contains(t, p.Warnings[0], "--language=javascript")
	assert.Contains(t, p.Warnings[0], "should be followed by an input file name or --stdin")
}

func TestConfigFileIsStickyAcrossFiles(t *testing.T) {
	p := Parse([]string{"--config-file=a.cfg", "a.js", "b.js", "--config-file=b.cfg", "c.js"})
	require.Len(t, p.Files, 3)
	assert.Equal(t, "a.cfg", p.Files[0].ConfigFile)
	assert.Equal(t, "a.cfg", p.Files[1].ConfigFile)
	assert.Equal(t, "b.cfg", p.Files[2].ConfigFile)
}

func TestPathForConfigSearchIsNonSticky(t *testing.T) {
	p := Parse([]string{"--path-for-config-search=/x", "a.js", "b.js"})
	require.Len(t, p.Files, 2)
	assert.True(t, p.Files[0].HasPathForConfigSearch)
	assert.Equal(t, "/x", p.Files[0].PathForConfigSearch)
	assert.False(t, p.Files[1].HasPathForConfigSearch)
}

func TestVimFileBufnrAppliesToNextFileOnly(t *testing.T) {
	p := Parse([]string{"--vim-file-bufnr=3", "a.js", "b.js"})
	require.Len(t, p.Files, 2)
	assert.True(t, p.Files[0].HasVimFileBufnr)
	assert.Equal(t, 3, p.Files[0].VimFileBufnr)
	assert.False(t, p.Files[1].HasVimFileBufnr)
}

func TestVimFileBufnrInvalidIntIsUnrecognized(t *testing.T) {
	p := Parse([]string{"--vim-file-bufnr=nope", "a.js"})
	require.Len(t, p.UnrecognizedOptions, 1)
	assert.Equal(t, "nope", p.UnrecognizedOptions[0].Value)
}

func TestOutputFormatUnknownValueIsUnrecognized(t *testing.T) {
	p := Parse([]string{"--output-format=bogus"})
	require.Len(t, p.UnrecognizedOptions, 1)
	assert.Equal(t, "bogus", p.UnrecognizedOptions[0].Value)
}

func TestOutputFormatBareFlagHoldsFlagName(t *testing.T) {
	p := Parse([]string{"--output-format"})
	require.Len(t, p.UnrecognizedOptions, 1)
	assert.Equal(t, "--output-format", p.UnrecognizedOptions[0].Value)
}

func TestExitFailOnEmptyListIsError(t *testing.T) {
	p := Parse([]string{"--exit-fail-on="})
	require.Len(t, p.UnrecognizedOptions, 1)
}

func TestExitFailOnParsesCommaSeparatedList(t *testing.T) {
	p := Parse([]string{"--exit-fail-on=error,Diag_Use_Of_Undeclared_Variable"})
	assert.Equal(t, []string{"error", "Diag_Use_Of_Undeclared_Variable"}, p.ExitFailOn)
}

func TestLSPServerWarnsAboutIgnoredFlags(t *testing.T) {
	p := Parse([]string{"--lsp-server", "--output-format=emacs-lisp", "a.js"})
	assert.True(t, p.LSPServer)
	assert.NotEmpty(t, p.Warnings)
}

func TestDebugParserVisitsPrefixMatches(t *testing.T) {
	for _, arg := range []string{"--debug-parser-visits", "--debug-p", "--debug-parser-vis"} {
		p := Parse([]string{arg})
		assert.True(t, p.DebugParserVisits, arg)
	}
}

func TestDoubleDashTerminatesFlagParsing(t *testing.T) {
	p := Parse([]string{"--", "--not-a-flag.js"})
	require.Len(t, p.Files, 1)
	assert.Equal(t, "--not-a-flag.js", p.Files[0].Path)
}

func TestStdinAliasesAndMultipleStdinFlag(t *testing.T) {
	p := Parse([]string{"--stdin", "a.js", "-"})
	require.Len(t, p.Files, 3)
	assert.True(t, p.Files[0].Stdin)
	assert.True(t, p.Files[2].Stdin)
	assert.True(t, p.HasMultipleStdin)
}

func TestHelpAndVersionFlags(t *testing.T) {
	assert.True(t, Parse([]string{"--help"}).Help)
	assert.True(t, Parse([]string{"-h"}).Help)
	assert.True(t, Parse([]string{"--version"}).Version)
	assert.True(t, Parse([]string{"-v"}).Version)
}

func TestUnknownFlagIsUnrecognized(t *testing.T) {
	p := Parse([]string{"--not-a-real-flag"})
	require.Len(t, p.UnrecognizedOptions, 1)
	assert.Equal(t, "--not-a-real-flag", p.UnrecognizedOptions[0].Flag)
}
