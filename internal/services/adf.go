package services

import (
	"fmt"
	"strings"
)

// ExtractADFText flattens an Atlassian Document Format value into plain
// text. Jira returns descriptions and worklog comments either as plain
// strings or as ADF trees; both pass through here.
func ExtractADFText(content interface{}) string {
	if content == nil {
		return ""
	}

	switch v := content.(type) {
	case string:
		return v
	case map[string]interface{}:
		var parts []string
		collectTextNodes(v, &parts)
		return strings.TrimSpace(strings.Join(parts, " "))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func collectTextNodes(node interface{}, parts *[]string) {
	switch v := node.(type) {
	case map[string]interface{}:
		if v["type"] == "text" {
			if text, ok := v["text"].(string); ok {
				*parts = append(*parts, text)
			}
			return
		}
		if children, ok := v["content"].([]interface{}); ok {
			for _, child := range children {
				collectTextNodes(child, parts)
			}
		}
	case []interface{}:
		for _, item := range v {
			collectTextNodes(item, parts)
		}
	}
}

// ADFDocument builds a minimal ADF doc with one paragraph per text,
// the shape Jira expects for issue descriptions and worklog comments.
func ADFDocument(paragraphs ...string) map[string]interface{} {
	content := make([]interface{}, 0, len(paragraphs))
	for _, text := range paragraphs {
		content = append(content, map[string]interface{}{
			"type": "paragraph",
			"content": []interface{}{
				map[string]interface{}{
					"type": "text",
					"text": text,
				},
			},
		})
	}

	return map[string]interface{}{
		"type":    "doc",
		"version": 1,
		"content": content,
	}
}
