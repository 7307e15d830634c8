// Package lint implements the optional content-validation pass. It reports
// findings about the record set (dangling cross-references, muscle ids unknown
// to the taxonomy) without ever changing render semantics: rendering under the
// default policy drops unresolved references silently whether or not lint ran.
package lint

import (
	"fmt"

	"github.com/hautu-waka/wakabuild/internal/content"
	"github.com/hautu-waka/wakabuild/internal/util/sets"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rule identifiers, stable for filtering and log output.
const (
	RuleStageToolRef  = "stage-tool-reference"
	RuleToolStageRef  = "tool-stage-reference"
	RuleToolMuscleRef = "tool-muscle-reference"
	RuleMuscleToolRef = "muscle-tool-reference"
)

// Finding is a single lint result.
type Finding struct {
	Severity Severity
	Rule     string
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s [%s] %s", f.Severity, f.Rule, f.Message)
}

// Run checks every cross-reference in the record set and returns findings in
// record order. Duplicate ids and missing required fields are load-time
// validation failures and are not re-checked here.
func Run(recs *content.Records) []Finding {
	stageIDs := sets.New[string]()
	for _, s := range recs.Stages {
		stageIDs.Add(s.ID)
	}
	toolIDs := sets.New[string]()
	for _, t := range recs.Tools {
		toolIDs.Add(t.ID)
	}
	muscleIDs := sets.New[string]()
	if recs.Muscles != nil {
		for _, d := range recs.Muscles.Dimensions {
			for _, m := range d.Muscles {
				muscleIDs.Add(m.ID)
			}
		}
	}

	var findings []Finding
	for _, s := range recs.Stages {
		for _, id := range s.Tools {
			if !toolIDs.Has(id) {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Rule:     RuleStageToolRef,
					Message:  fmt.Sprintf("stage %q references unknown tool %q", s.ID, id),
				})
			}
		}
	}
	for _, t := range recs.Tools {
		for _, id := range t.Stages {
			if !stageIDs.Has(id) {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Rule:     RuleToolStageRef,
					Message:  fmt.Sprintf("tool %q references unknown stage %q", t.ID, id),
				})
			}
		}
		for _, id := range t.Muscles {
			if !muscleIDs.Has(id) {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Rule:     RuleToolMuscleRef,
					Message:  fmt.Sprintf("tool %q develops muscle %q not present in the taxonomy", t.ID, id),
				})
			}
		}
	}
	if recs.Muscles != nil {
		for _, d := range recs.Muscles.Dimensions {
			for _, m := range d.Muscles {
				for _, id := range m.Tools {
					if !toolIDs.Has(id) {
						findings = append(findings, Finding{
							Severity: SeverityWarning,
							Rule:     RuleMuscleToolRef,
							Message:  fmt.Sprintf("muscle %q references unknown tool %q", m.ID, id),
						})
					}
				}
			}
		}
	}
	return findings
}

// Dangling returns only the findings a strict reference policy turns into a
// build failure: references renderers would otherwise drop silently. The
// tool→muscle rule is excluded because rendering never resolves muscle ids
// (labels derive from the id itself).
func Dangling(recs *content.Records) []Finding {
	var out []Finding
	for _, f := range Run(recs) {
		if f.Rule == RuleToolMuscleRef {
			continue
		}
		out = append(out, f)
	}
	return out
}
