package cli

import "os"

// writeFile creates a small fixture file.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
