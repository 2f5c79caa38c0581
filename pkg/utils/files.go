package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"minilang/pkg/interpreter"
)

// ErrConfig marks invocation problems detected before any lexing: a wrong
// argument count, a wrong file extension or an unreadable file.
var ErrConfig = errors.New("configuration error")

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// SourcePath validates that args holds exactly one path ending in ext and
// returns its absolute form.
func SourcePath(args []string, ext string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected exactly one source file argument, got %d", ErrConfig, len(args))
	}
	if !strings.HasSuffix(args[0], ext) {
		return "", fmt.Errorf("%w: source file %q must have the %s extension", ErrConfig, args[0], ext)
	}
	fullPath, _, err := GetPathInfo(args[0])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return fullPath, nil
}

// LoadSource reads the program at path and returns it preprocessed and
// ready for the lexer.
func LoadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read source file: %v", ErrConfig, err)
	}
	return interpreter.Preprocess(string(data)), nil
}
