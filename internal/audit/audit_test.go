package audit

import (
	"strings"
	"testing"
)

func TestAudit_CleanContent(t *testing.T) {
	content := "<!-- wp:paragraph -->\n<p>fine</p>\n<!-- /wp:paragraph -->\n\n" +
		"<!-- wp:content-kit/click-to-tweet {\"tweet\":\"hello\"} /-->"
	if findings := New().Audit(content); len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", findings)
	}
}

func TestAudit_UnbalancedOpen(t *testing.T) {
	findings := New().Audit("<!-- wp:group -->\n<div>")
	if len(findings) != 1 || !strings.Contains(findings[0], "left open") {
		t.Fatalf("expected unbalanced finding, got %v", findings)
	}
}

func TestAudit_StrayClose(t *testing.T) {
	findings := New().Audit("<!-- /wp:group -->")
	if len(findings) != 1 || !strings.Contains(findings[0], "without a matching open") {
		t.Fatalf("expected stray-close finding, got %v", findings)
	}
}

func TestAudit_MalformedAttributeJSON(t *testing.T) {
	findings := New().Audit("<!-- wp:heading {level:3} -->\n<h3>x</h3>\n<!-- /wp:heading -->")
	if len(findings) != 1 || !strings.Contains(findings[0], "not valid JSON") {
		t.Fatalf("expected JSON finding, got %v", findings)
	}
}

func TestAudit_SchemaViolation(t *testing.T) {
	findings := New().Audit(`<!-- wp:content-kit/click-to-tweet {"tweet":""} /-->`)
	if len(findings) != 1 || !strings.Contains(findings[0], "wp:content-kit/click-to-tweet") {
		t.Fatalf("expected schema finding, got %v", findings)
	}
}

func TestAudit_UnknownBlockAttrsUnchecked(t *testing.T) {
	content := `<!-- wp:some-plugin/widget {"anything":["goes",1]} /-->`
	if findings := New().Audit(content); len(findings) != 0 {
		t.Fatalf("unknown blocks should not be schema-checked, got %v", findings)
	}
}
