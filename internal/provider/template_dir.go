package provider

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadTemplatesDir walks dir and returns a FileTemplate per regular file.
// The file's path relative to dir becomes the output path template, with a
// trailing .tmpl extension stripped; the file contents become the body.
// Hidden files and directories are skipped.
func LoadTemplatesDir(dir string) ([]FileTemplate, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("templates directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates path %s is not a directory", dir)
	}

	var templates []FileTemplate
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		templates = append(templates, FileTemplate{
			Path: strings.TrimSuffix(filepath.ToSlash(rel), ".tmpl"),
			Body: string(body),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}
	return templates, nil
}
