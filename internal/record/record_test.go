package record

import (
	"testing"

	"github.com/okapiworks/roster/internal/org"
)

func TestParseReadsHeadingName(t *testing.T) {
	content := []byte("# Ada Lovelace\n\nAgent: codex\n\nLoves graphs.\n")
	emp := Parse(content, "ada", org.DefaultAgentType)
	if emp.Name != "Ada Lovelace" {
		t.Fatalf("Name = %q, want Ada Lovelace", emp.Name)
	}
	if emp.AgentType != org.AgentCodex {
		t.Fatalf("AgentType = %q, want codex", emp.AgentType)
	}
}

func TestParseFallsBackToBaseName(t *testing.T) {
	content := []byte("No heading here, just prose.\n")
	emp := Parse(content, "grace-hopper", org.DefaultAgentType)
	if emp.Name != "grace-hopper" {
		t.Fatalf("Name = %q, want the file base name exactly", emp.Name)
	}
}

func TestParseIgnoresDeeperHeadings(t *testing.T) {
	content := []byte("## Background\n\nSome notes.\n")
	emp := Parse(content, "turing", org.DefaultAgentType)
	if emp.Name != "turing" {
		t.Fatalf("Name = %q, want turing (## is not a record heading)", emp.Name)
	}
}

func TestParseDefaultsAgentType(t *testing.T) {
	for _, content := range []string{
		"# Joan\n",
		"# Joan\nAgent: hal9000\n",
	} {
		emp := Parse([]byte(content), "joan", org.DefaultAgentType)
		if emp.AgentType != org.DefaultAgentType {
			t.Fatalf("AgentType for %q = %q, want default %q", content, emp.AgentType, org.DefaultAgentType)
		}
	}
}

func TestParseUsesConfiguredFallbackAgent(t *testing.T) {
	emp := Parse([]byte("# Joan\n"), "joan", org.AgentCodex)
	if emp.AgentType != org.AgentCodex {
		t.Fatalf("AgentType = %q, want the configured fallback codex", emp.AgentType)
	}
	emp = Parse([]byte("# Joan\nAgent: gemini\n"), "joan", org.AgentCodex)
	if emp.AgentType != org.AgentGemini {
		t.Fatalf("AgentType = %q, declared agent must win over the fallback", emp.AgentType)
	}
	emp = Parse([]byte("# Joan\n"), "joan", "")
	if emp.AgentType != org.DefaultAgentType {
		t.Fatalf("AgentType = %q, empty fallback should mean the standard default", emp.AgentType)
	}
}

func TestParseGlassesKeywordOverridesAccessory(t *testing.T) {
	emp := Parse([]byte("# Edsger\n\nAlways wears Glasses when reviewing.\n"), "edsger", org.DefaultAgentType)
	if emp.Traits.Accessory != org.AccessoryGlasses {
		t.Fatalf("Accessory = %d, want %d", emp.Traits.Accessory, org.AccessoryGlasses)
	}
}

func TestParseWithoutKeywordKeepsBaseline(t *testing.T) {
	emp := Parse([]byte("# Barbara\n\nNo notable accessories.\n"), "barbara", org.DefaultAgentType)
	if emp.Traits != BaselineTraits("Barbara") {
		t.Fatalf("Traits = %+v, want the baseline for the name", emp.Traits)
	}
}

func TestBaselineTraitsDeterministicAndInRange(t *testing.T) {
	first := BaselineTraits("Margaret")
	second := BaselineTraits("Margaret")
	if first != second {
		t.Fatalf("baseline not deterministic: %+v vs %+v", first, second)
	}
	if first.Skin < 0 || first.Skin >= org.SkinToneCount {
		t.Fatalf("Skin = %d out of range", first.Skin)
	}
	if first.Hair < 0 || first.Hair >= org.HairStyleCount {
		t.Fatalf("Hair = %d out of range", first.Hair)
	}
	if first.Accessory < 0 || first.Accessory >= org.AccessoryCount {
		t.Fatalf("Accessory = %d out of range", first.Accessory)
	}
}

func TestParseHandlesCRLF(t *testing.T) {
	emp := Parse([]byte("# Radia\r\nAgent: gemini\r\n"), "radia", org.DefaultAgentType)
	if emp.Name != "Radia" {
		t.Fatalf("Name = %q, want Radia", emp.Name)
	}
	if emp.AgentType != org.AgentGemini {
		t.Fatalf("AgentType = %q, want gemini", emp.AgentType)
	}
}
