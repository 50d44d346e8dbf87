// Package docs holds the built-in help pages served by the topic command.
// Every *.md file in the package is a topic, embedded at build time.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// GetTopic returns the markdown content of one help topic. The special
// name "*" expands to every topic, concatenated in sorted order.
func GetTopic(name string) (string, error) {
	if name == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}

	content, err := topics.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// GetTopics concatenates the content of several topics, "*" included.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// GetAllTopics lists the topic names, sorted. The readme index page is
// the landing page, not a topic of its own.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(topics, "*.md")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, file := range files {
		name := strings.TrimSuffix(file, ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
