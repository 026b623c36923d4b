// Command wstr applies wstring transformations to lines of text read from
// stdin or a file, one result per line.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/cpppgo/wstring"
)

type options struct {
	Upper      bool     `arg:"--upper" help:"convert to upper case"`
	Lower      bool     `arg:"--lower" help:"convert to lower case"`
	Capitalize bool     `arg:"--capitalize" help:"capitalize"`
	Center     int      `arg:"--center" placeholder:"WIDTH" help:"center in a field of the given width"`
	ZFill      int      `arg:"--zfill" placeholder:"WIDTH" help:"pad a numeric string with zeros on the left"`
	ExpandTabs int      `arg:"--expand-tabs" placeholder:"N" default:"-1" help:"expand tabs to the next multiple of N columns"`
	Repeat     int      `arg:"--repeat" placeholder:"N" default:"1" help:"repeat each line N times"`
	Replace    []string `arg:"--replace" placeholder:"FROM TO" help:"replace all occurrences of FROM with TO"`
	Count      string   `arg:"--count" placeholder:"SUB" help:"print the number of occurrences of SUB instead of the line"`
	Find       string   `arg:"--find" placeholder:"SUB" help:"print the offset of the first occurrence of SUB instead of the line"`
	File       string   `arg:"positional" help:"input file, stdin when omitted"`
}

func main() {
	var opts options
	parser := arg.MustParse(&opts)
	if len(opts.Replace) != 0 && len(opts.Replace) != 2 {
		parser.Fail("--replace takes exactly two values: FROM TO")
	}

	input := os.Stdin
	if opts.File != "" {
		file, err := os.Open(opts.File)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()

		input = file
	}

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line, err := process(wstring.From(scanner.Text()), opts)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func process(s wstring.String, opts options) (string, error) {
	if opts.Count != "" {
		return fmt.Sprint(s.Count(wstring.From(opts.Count))), nil
	}
	if opts.Find != "" {
		return fmt.Sprint(s.Find(wstring.From(opts.Find))), nil
	}

	if len(opts.Replace) == 2 {
		if err := wstring.Replace(&s, wstring.From(opts.Replace[0]), wstring.From(opts.Replace[1]), wstring.NoPos); err != nil {
			return "", err
		}
	}
	if opts.ExpandTabs >= 0 {
		if err := wstring.ExpandTabs(&s, opts.ExpandTabs); err != nil {
			return "", err
		}
	}

	switch {
	case opts.Upper:
		wstring.Upper(&s)
	case opts.Lower:
		wstring.Lower(&s)
	case opts.Capitalize:
		wstring.Capitalize(&s)
	}

	if opts.Center > 0 {
		if err := wstring.Center(&s, opts.Center, ' '); err != nil {
			return "", err
		}
	}
	if opts.ZFill > 0 {
		if err := wstring.ZFill(&s, opts.ZFill); err != nil {
			return "", err
		}
	}
	if opts.Repeat != 1 {
		if err := wstring.Repeat(&s, opts.Repeat); err != nil {
			return "", err
		}
	}

	return s.String(), nil
}
