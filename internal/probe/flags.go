package probe

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// UnquoteError reports a value whose opening quote is never closed.
type UnquoteError struct {
	Quote rune
}

func (e *UnquoteError) Error() string {
	return fmt.Sprintf("quotes '%c' not closed", e.Quote)
}

// unquote strips one level of matching ", ' or ` quotes.
func unquote(s string) (string, error) {
	if len(s) < 2 {
		return s, nil
	}
	q := rune(s[0])
	if q != '"' && q != '\'' && q != '`' {
		return s, nil
	}
	if rune(s[len(s)-1]) != q {
		return "", &UnquoteError{Quote: q}
	}
	return s[1 : len(s)-1], nil
}

// collectArgs splits a compiler command line the way a shell would and
// returns the values of every argument starting with prefix. Values that
// are still quoted after splitting are unquoted; a value with an unclosed
// quote is dropped.
func collectArgs(cmdline, prefix string) ([]string, error) {
	args, err := shellwords.Parse(cmdline)
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", cmdline, err)
	}
	var out []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, prefix) || len(arg) == len(prefix) {
			continue
		}
		v, err := unquote(arg[len(prefix):])
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// parseCompilerLine extracts include paths, library paths and libraries.
func parseCompilerLine(cmdline string) (includes, libPaths, libs []string, err error) {
	if includes, err = collectArgs(cmdline, "-I"); err != nil {
		return nil, nil, nil, err
	}
	if libPaths, err = collectArgs(cmdline, "-L"); err != nil {
		return nil, nil, nil, err
	}
	if libs, err = collectArgs(cmdline, "-l"); err != nil {
		return nil, nil, nil, err
	}
	return includes, libPaths, libs, nil
}
