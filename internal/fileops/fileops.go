// Package fileops implements local file transformation tools.
package fileops

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"randomtools/internal/common"
)

// CopyFile copies a regular file, truncating the destination.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "copy_failed", "failed to open "+src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "copy_failed", "failed to create "+dst)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "copy_failed",
			fmt.Sprintf("failed to copy %s to %s", src, dst))
	}
	return out.Sync()
}

// MoveToGUIDs copies every file of inDir into outDir under a GUID name
// keeping the original extension. When mapPath is set the name-to-GUID
// map is loaded first and written back after, so repeated runs reuse
// the same GUIDs and skip files already copied.
func MoveToGUIDs(inDir, outDir, mapPath string, msgOut io.Writer) error {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "dir_read", "failed to read "+inDir)
	}

	guids := make(map[string]string)
	if mapPath != "" {
		if data, err := os.ReadFile(mapPath); err == nil {
			if err := json.Unmarshal(data, &guids); err != nil {
				return common.WrapError(err, common.ErrorTypeStorage, "map_parse",
					"failed to parse GUID map "+mapPath)
			}
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, ok := guids[name]; !ok {
			guids[name] = uuid.NewString() + filepath.Ext(name)
		}

		target := filepath.Join(outDir, guids[name])
		if _, err := os.Stat(target); err == nil {
			continue
		}

		source := filepath.Join(inDir, name)
		fmt.Fprintf(msgOut, "Copy %s to %s\n", source, target)
		if err := CopyFile(source, target); err != nil {
			return err
		}
	}

	if mapPath != "" {
		data, err := json.MarshalIndent(guids, "", "  ")
		if err != nil {
			return common.WrapError(err, common.ErrorTypeStorage, "map_encode", "failed to encode GUID map")
		}
		if err := os.WriteFile(mapPath, data, 0o644); err != nil {
			return common.WrapError(err, common.ErrorTypeStorage, "map_write", "failed to write "+mapPath)
		}
	}
	return nil
}
