package amend

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pyhub-apps/gaejeong-cli/internal/locus"
	"github.com/pyhub-apps/gaejeong-cli/internal/ruleengine"
)

// suffixDropSet are excluded suffixes that fold back into the plain Rule 0
// formula: the suffix itself never appears in the rendered sentence, only
// in the locations it annotates.
var suffixDropSet = map[string]bool{
	"등": true, "등인": true, "등만": true, "등의": true, "등에": true,
	"에": true, "에게": true,
	"만": true, "만을": true, "만이": true, "만은": true, "만에": true, "만으로": true,
}

// buildRule renders the amendment sentence for one chunk key, replicating
// the source system's suffix-aware dispatch ahead of the plain particle
// rule table.
func buildRule(key ChunkKey) string {
	switch key.Suffix {
	case "로서", "로써":
		return ruleengine.Apply(key.Chunk, key.Replaced, key.Suffix)
	case "으로서", "으로써":
		return ruleengine.Apply(key.Chunk, key.Replaced, key.Suffix)
	case "":
		// no suffix: either a bare chunk or a particle chunk
	default:
		if suffixDropSet[key.Suffix] {
			return ruleengine.Apply(key.Chunk, key.Replaced, key.Particle)
		}
		if key.Suffix != "의" {
			origWithSuffix := key.Chunk + key.Suffix
			replacedWithSuffix := key.Replaced + key.Suffix
			return ruleengine.Apply(origWithSuffix, replacedWithSuffix, key.Particle)
		}
	}
	return ruleengine.Apply(key.Chunk, key.Replaced, key.Particle)
}

// consolidatePattern captures the four pieces of a rendered rule sentence
// so a second occurrence can be folded into a single "각각" (each/respectively)
// sentence, mirroring the source system's consolidation regex.
var consolidatePattern = regexp.MustCompile(`^(".*?")(을|를) (".*?")(으로|로) 한다\.?$`)

// consolidate injects "각각" into a rule sentence that covers more than one
// location, so "…"를 "…"로 한다. becomes "…"를 각각 "…"로 한다. — unless the
// sentence already reads "각각" or doesn't match the expected quoted shape,
// in which case it is used unchanged.
func consolidate(rule string) string {
	if strings.Contains(rule, "각각") {
		return rule
	}
	m := consolidatePattern.FindStringSubmatch(rule)
	if m == nil {
		return rule
	}
	return fmt.Sprintf("%s%s 각각 %s%s 한다.", m[1], m[2], m[3], m[4])
}

// RenderLocations groups and dedupes a rule's citation locations, then
// renders the "<locations> 중 <rule>" line spec.md §4.5 describes.
func RenderLocations(rule string, locations []string) (string, error) {
	unique := sortedUnique(locations)
	if len(unique) > 1 {
		rule = consolidate(rule)
	}
	grouped, err := locus.Group(unique)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s 중 %s", grouped, rule), nil
}

// BuildRuleMap folds a law's chunk map into rule-text -> locations, merging
// chunk keys that render to the identical sentence.
func BuildRuleMap(chunks map[ChunkKey][]string) map[string][]string {
	ruleMap := map[string][]string{}
	for key, locations := range chunks {
		rule := buildRule(key)
		ruleMap[rule] = append(ruleMap[rule], locations...)
	}
	return ruleMap
}
