package interact

import (
	"fmt"
	"os"
	"strings"
)

// ResponseFileName is the fixed name of the generated argument file.
const ResponseFileName = "args.rsp"

// Answers holds the collected configurator answers in response-file order.
type Answers struct {
	Output           string
	Languages        string
	Source           string
	IncludeComments  bool
	SortByType       bool
	RemoveEmptyLines bool
	Author           string
}

// WriteResponseFile serializes the answers as one flag per line, each flag
// followed by its value on the same line, in the fixed order -o, -l, -s,
// optional -c, -t, optional -r, optional -a.
func WriteResponseFile(path string, a Answers) error {
	var b strings.Builder
	fmt.Fprintf(&b, "-o %s\n", a.Output)
	fmt.Fprintf(&b, "-l %s\n", a.Languages)
	fmt.Fprintf(&b, "-s %s\n", a.Source)
	if a.IncludeComments {
		b.WriteString("-c\n")
	}
	if a.SortByType {
		b.WriteString("-t type\n")
	} else {
		b.WriteString("-t name\n")
	}
	if a.RemoveEmptyLines {
		b.WriteString("-r\n")
	}
	if a.Author != "" {
		fmt.Fprintf(&b, "-a %s\n", a.Author)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// ExpandArgs replaces every @file argument with the flags read from that
// response file. Each non-empty line holds one flag; anything after the
// first space is the flag's value, so values may themselves contain spaces.
func ExpandArgs(args []string) ([]string, error) {
	var expanded []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") || len(arg) == 1 {
			expanded = append(expanded, arg)
			continue
		}

		path := arg[1:]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading response file %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			flagName, value, hasValue := strings.Cut(line, " ")
			expanded = append(expanded, flagName)
			if hasValue {
				expanded = append(expanded, strings.TrimSpace(value))
			}
		}
	}
	return expanded, nil
}
