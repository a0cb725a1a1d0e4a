// Package record extracts employee descriptors from markdown record files.
//
// Parsing is lenient by contract: each field falls back to a default when
// its pattern is absent, so a readable record file never fails to parse.
package record

import (
	"hash/fnv"
	"math/rand"
	"regexp"
	"strings"

	"github.com/okapiworks/roster/internal/org"
)

var (
	headingPattern   = regexp.MustCompile(`(?m)^# +(.+)$`)
	agentLinePattern = regexp.MustCompile(`(?mi)^agent\s*:\s*(.+)$`)
)

const glassesKeyword = "glasses"

// Parse builds an employee descriptor from the raw contents of a record
// file. baseName is the file name without extension and becomes the
// employee name when the document has no heading; fallback is the agent
// type assumed when the document does not declare one.
func Parse(content []byte, baseName string, fallback org.AgentType) org.Employee {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	name := strings.TrimSpace(baseName)
	if m := headingPattern.FindStringSubmatch(text); m != nil {
		if heading := strings.TrimSpace(m[1]); heading != "" {
			name = heading
		}
	}

	agent := fallback
	if agent == "" {
		agent = org.DefaultAgentType
	}
	if m := agentLinePattern.FindStringSubmatch(text); m != nil {
		if parsed, ok := org.ParseAgentType(m[1]); ok {
			agent = parsed
		}
	}

	traits := BaselineTraits(name)
	if strings.Contains(strings.ToLower(text), glassesKeyword) {
		traits.Accessory = org.AccessoryGlasses
	}

	return org.Employee{Name: name, AgentType: agent, Traits: traits}
}

// BaselineTraits derives the randomized portrait baseline for a name. The
// generator is seeded from the name itself so repeated scans of an
// unchanged tree produce the same roster.
func BaselineTraits(name string) org.Traits {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return org.Traits{
		Skin:      rng.Intn(org.SkinToneCount),
		Hair:      rng.Intn(org.HairStyleCount),
		Accessory: rng.Intn(org.AccessoryCount),
	}
}
