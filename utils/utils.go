package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

func EnsureDirectory(dirPath string) error {
	if dirPath == "" || dirPath == "." {
		return nil
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("invalid directory path %s: %w", dirPath, err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", absPath, err)
	}

	return nil
}

func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%d ms", duration.Milliseconds())
	}

	if duration < time.Minute {
		return fmt.Sprintf("%.1f sec", duration.Seconds())
	}

	if duration < time.Hour {
		return fmt.Sprintf("%.1f min", duration.Minutes())
	}

	return fmt.Sprintf("%.1f hrs", duration.Hours())
}

func FormatNumber(num int) string {
	if num < 1000 {
		return strconv.Itoa(num)
	}

	if num < 1000000 {
		return fmt.Sprintf("%.1fK", float64(num)/1000.0)
	}

	return fmt.Sprintf("%.1fM", float64(num)/1000000.0)
}

// TruncateString shortens s to maxLength runes, ending with "..." when cut
func TruncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	if maxLength <= 3 {
		return string(runes[:maxLength])
	}

	return string(runes[:maxLength-3]) + "..."
}

// SingleLine collapses all whitespace runs so multi-line drafts fit one row
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func ParseBoolFlag(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	return value == "true" || value == "1" || value == "y" || value == "yes" || value == "on"
}
