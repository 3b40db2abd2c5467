package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	in          string
	transcript  string
	out         string
	config      string
	contentType string
	model       string
	fileName    string
	dateFormat  string
	verbose     bool
	version     bool
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("docexport", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.in, "in", "i", "", "path to the summary Markdown file (required)")
	fs.StringVarP(&f.transcript, "transcript", "t", "", "path to the plain-text transcript file")
	fs.StringVarP(&f.out, "out", "o", "", "output path for the document JSON (default: input name with .json)")
	fs.StringVarP(&f.config, "config", "c", "", "path to a YAML export config")
	fs.StringVar(&f.contentType, "content-type", "", "content type tag (meeting, lecture, interview, podcast)")
	fs.StringVar(&f.model, "model", "", "model identifier recorded in the banner")
	fs.StringVar(&f.fileName, "file-name", "", "original media file name recorded in the banner and footer")
	fs.StringVar(&f.dateFormat, "date-format", "", "banner timestamp format (tokens like \"MMMM D, YYYY\" or a preset)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}
