// Package audit inspects converted block markup for structural problems.
// Findings are advisory: the pipeline surfaces them as warnings and never
// fails a conversion over them.
package audit

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var blockCommentPattern = regexp.MustCompile(`<!--\s*(/)?wp:([a-zA-Z0-9_/-]+)([^>]*?)(/)?-->`)

// Auditor validates block markup structure and the attribute payloads of the
// custom blocks this module emits. Safe for concurrent use; all schemas are
// compiled at construction.
type Auditor struct {
	schemas map[string]*jsonschema.Schema
}

// New returns an auditor with the built-in block attribute schemas.
func New() *Auditor {
	return &Auditor{schemas: compiledSchemas()}
}

// Audit scans content once and reports every finding it can collect: comment
// balance problems, malformed attribute JSON, and schema violations on known
// custom blocks.
func (a *Auditor) Audit(content string) []string {
	var findings []string
	depth := 0

	for _, match := range blockCommentPattern.FindAllStringSubmatch(content, -1) {
		closing := match[1] == "/"
		name := match[2]
		rawAttrs := strings.TrimSpace(match[3])
		selfClosing := match[4] == "/"

		switch {
		case closing:
			depth--
			if depth < 0 {
				findings = append(findings, fmt.Sprintf("wp:%s: closing comment without a matching open", name))
				depth = 0
			}
		case selfClosing:
			// No depth change.
		default:
			depth++
		}

		if closing || rawAttrs == "" {
			continue
		}
		findings = append(findings, a.checkAttributes(name, rawAttrs)...)
	}

	if depth > 0 {
		findings = append(findings, fmt.Sprintf("unbalanced block comments: %d left open", depth))
	}

	return findings
}

func (a *Auditor) checkAttributes(name, rawAttrs string) []string {
	var payload any
	if err := json.Unmarshal([]byte(rawAttrs), &payload); err != nil {
		return []string{fmt.Sprintf("wp:%s: attributes are not valid JSON: %v", name, err)}
	}
	if _, ok := payload.(map[string]any); !ok {
		return []string{fmt.Sprintf("wp:%s: attributes must be a JSON object", name)}
	}

	schema, ok := a.schemas[name]
	if !ok {
		return nil
	}
	if err := schema.Validate(payload); err != nil {
		return []string{fmt.Sprintf("wp:%s: %s", name, flattenValidationError(err))}
	}
	return nil
}

// flattenValidationError reduces jsonschema's hierarchical error to a single
// line suited for a warning list.
func flattenValidationError(err error) string {
	var validationErr *jsonschema.ValidationError
	if ok := asValidationError(err, &validationErr); ok {
		leaf := validationErr
		for len(leaf.Causes) > 0 {
			leaf = leaf.Causes[0]
		}
		location := strings.TrimSpace(leaf.InstanceLocation)
		if location == "" {
			location = "#"
		}
		return fmt.Sprintf("%s: %s", location, leaf.Message)
	}
	return err.Error()
}

func asValidationError(err error, target **jsonschema.ValidationError) bool {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return false
	}
	*target = ve
	return true
}
