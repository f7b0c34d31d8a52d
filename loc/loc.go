// Package loc has routines for tracking locations in textual IR files.
package loc

import "fmt"

// Loc is a pair of 1-based byte offsets, start and end, into a File.
// The zero value indicates no location.
type Loc [2]int

// A Location identifies a string in a file.
// The zero value indicates no location.
type Location struct {
	Path string
	Line [2]int
	Col  [2]int
}

func (l Location) String() string {
	if (l == Location{}) {
		return ""
	}
	if l.Line[0] == l.Line[1] && l.Col[0] == l.Col[1] {
		return fmt.Sprintf("%s:%d.%d", l.Path, l.Line[0], l.Col[0])
	}
	return fmt.Sprintf("%s:%d.%d-%d.%d", l.Path, l.Line[0], l.Col[0], l.Line[1], l.Col[1])
}

// File describes a parsed file by its path, length,
// and the byte offsets of its newlines.
type File struct {
	Path   string
	Length int
	NLs    []int
}

// NewFile returns a File for the given path and contents.
func NewFile(path, text string) *File {
	f := &File{Path: path, Length: len(text)}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			f.NLs = append(f.NLs, i)
		}
	}
	return f
}

// Location returns the Location of l in the file.
// The zero Loc returns the zero Location.
func (f *File) Location(l Loc) Location {
	switch {
	case l == Loc{}:
		return Location{}
	case l[0] < 1 || l[1]-1 > f.Length:
		panic("out of range")
	case l[0] > l[1]:
		panic("bad Loc")
	}
	l0, c0 := f.lineCol(l[0] - 1)
	l1, c1 := f.lineCol(l[1] - 1)
	return Location{Path: f.Path, Line: [2]int{l0, l1}, Col: [2]int{c0, c1}}
}

func (f *File) lineCol(offs int) (int, int) {
	line, colStart := 1, -1
	for _, nl := range f.NLs {
		if nl >= offs {
			break
		}
		colStart = nl
		line++
	}
	return line, offs - colStart
}
