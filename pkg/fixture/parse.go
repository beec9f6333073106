package fixture

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseTreeObjects reads a tree-object listing. Blank lines and lines starting
// with '#' are skipped, object types are case-insensitive and quoted paths are
// unquoted.
func ParseTreeObjects(r io.Reader) ([]TreeObject, error) {
	var objects []TreeObject
	err := scanRecords(r, func(lineNo int, fields [2]string) error {
		t, err := parseObjectType(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		path, err := unquote(fields[1])
		if err != nil {
			return fmt.Errorf("line %d: %w: %v", lineNo, ErrMalformedLine, err)
		}
		objects = append(objects, TreeObject{Type: t, Path: path})
		return nil
	})
	return objects, err
}

// ParseAdjacencies reads a file-resource listing with the same comment and
// whitespace rules as ParseTreeObjects.
func ParseAdjacencies(r io.Reader) ([]Adjacency, error) {
	var adjacencies []Adjacency
	err := scanRecords(r, func(_ int, fields [2]string) error {
		adjacencies = append(adjacencies, Adjacency{TreePath: fields[0], FileResource: fields[1]})
		return nil
	})
	return adjacencies, err
}

func scanRecords(r io.Reader, fn func(lineNo int, fields [2]string) error) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		split := strings.Split(line, ",")
		if len(split) != 2 {
			return fmt.Errorf("line %d: %w: %q", lineNo, ErrMalformedLine, line)
		}
		fields := [2]string{strings.TrimSpace(split[0]), strings.TrimSpace(split[1])}
		if err := fn(lineNo, fields); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseObjectType(s string) (ObjectType, error) {
	switch t := ObjectType(strings.ToUpper(s)); t {
	case ObjectTypeRoot, ObjectTypeDir, ObjectTypeFile:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownObjectType, s)
	}
}

func unquote(s string) (string, error) {
	if strings.HasPrefix(s, `"`) {
		return strconv.Unquote(s)
	}
	return s, nil
}
