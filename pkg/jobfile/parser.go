// Package jobfile reads batch analysis requests, one per line:
//
//	# family topology mode name=value... [flag...]
//	bjt fixed-bias dc Vcc=20 Rb=470k Rc=3k beta=100
//	bjt vd ac Vcc=22 Rb1=56k Rb2=8.2k Rc=6.8k Re=1.5k beta=90 ro=50k bypassed
package jobfile

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/CanGulmez/transistor-analyzes/pkg/analysis"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

var parser = participle.MustBuild[File](
	participle.Lexer(JobLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// Entry is a request together with the line it was read from.
type Entry struct {
	Line    int
	Request analysis.Request
}

// Parse reads a job file from r. filename is used in error positions.
func Parse(filename string, r io.Reader) ([]Entry, error) {
	file, err := parser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file.entries()
}

func ParseString(filename, src string) ([]Entry, error) {
	file, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file.entries()
}

func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return Parse(path, f)
}

func (f *File) entries() ([]Entry, error) {
	entries := make([]Entry, 0, len(f.Jobs))
	for _, job := range f.Jobs {
		req, err := job.request()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", job.Pos, err)
		}
		entries = append(entries, Entry{Line: job.Pos.Line, Request: req})
	}
	return entries, nil
}

func (j *Job) request() (analysis.Request, error) {
	family, err := analysis.ParseFamily(j.Family)
	if err != nil {
		return analysis.Request{}, err
	}
	entry, err := analysis.Lookup(family, j.Topology)
	if err != nil {
		return analysis.Request{}, err
	}
	mode, err := device.ParseMode(j.Mode)
	if err != nil {
		return analysis.Request{}, err
	}

	req := analysis.Request{
		Family:   family,
		Topology: entry.Name,
		Mode:     mode,
		Values:   make(map[string]float64),
	}
	for _, item := range j.Items {
		if item.Value == nil {
			req.Flags = append(req.Flags, item.Name)
			continue
		}
		if _, dup := req.Values[item.Name]; dup {
			return analysis.Request{}, fmt.Errorf("%s: %s given twice: %w", item.Pos, item.Name, device.ErrInvalidParameter)
		}
		v, err := util.ParseValue(*item.Value)
		if err != nil {
			return analysis.Request{}, fmt.Errorf("%s: %s: %w", item.Pos, item.Name, err)
		}
		req.Values[item.Name] = v
	}
	return req, nil
}
