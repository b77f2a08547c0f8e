// Package main hosts the artgallery CLI entrypoint and command graph.
//
// The Cobra command tree opens the interactive browser on a terminal and
// offers list, show, and work commands that print the same catalog as tables
// or JSON for scripts. It centralizes configuration resolution, logger setup,
// and store construction so subcommands only decide what to print.
package main
