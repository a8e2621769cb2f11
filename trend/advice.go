package trend

import (
	"fmt"
	"math"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/vitals-api/consts"
	"github.com/bitmark-inc/vitals-api/schema"
	"github.com/bitmark-inc/vitals-api/utils"
)

// AdviceRule identifies an entry of the advice table
type AdviceRule string

const (
	RuleNone              AdviceRule = ""
	RuleElevatedWorsening AdviceRule = "advice.elevated_worsening"
	RuleLowDeclining      AdviceRule = "advice.low_declining"
	RuleImproving         AdviceRule = "advice.improving"
	RuleHighVariability   AdviceRule = "advice.high_variability"
	RuleMaintain          AdviceRule = "advice.maintain"
)

const (
	adviceFallbackID       = "advice.fallback"
	improvingChangeMinimum = 10.0
)

// AdviceMessages are the english templates of the advice table. They are
// only ever parameterized by the biomarker name and computed numbers.
var AdviceMessages = []*i18n.Message{
	{
		ID:    string(RuleElevatedWorsening),
		Other: "Your {{.Name}} is flagged as elevated and your recent readings show a worsening pattern ({{.Change}}% change over the last {{.Days}} days). Consider reviewing this trend with your healthcare provider.",
	},
	{
		ID:    string(RuleLowDeclining),
		Other: "Your {{.Name}} is flagged as low and has been declining across your recent readings. Consider reviewing this trend with your healthcare provider.",
	},
	{
		ID:    string(RuleImproving),
		Other: "Great progress: your {{.Name}} has moved {{.Change}}% in a consistent direction across your recent readings. Keep up your current routine.",
	},
	{
		ID:    string(RuleHighVariability),
		Other: "Your {{.Name}} readings vary a lot from test to test. A consistent diet, regular exercise and sticking to your care plan can help keep them steady.",
	},
	{
		ID:    string(RuleMaintain),
		Other: "Your {{.Name}} is within the normal range and stable. Keep up your current healthy habits.",
	},
	{
		ID:    adviceFallbackID,
		Other: "Keep tracking your lab results regularly. Add biomarkers to your dashboard to receive personalized trend insights.",
	},
}

// MatchRule returns the first rule of the advice table a trend satisfies.
// Rules are evaluated top to bottom and are exclusive per biomarker.
func MatchRule(r schema.TrendResult) AdviceRule {
	verdict := r.LatestVerdict
	trajectory := r.ShortTermTrajectory

	switch {
	case (verdict == schema.VerdictHigh || verdict == schema.VerdictCritical) &&
		trajectory == schema.TrajectoryWorsening:
		return RuleElevatedWorsening
	case (verdict == schema.VerdictLow || verdict == schema.VerdictCritical) &&
		trajectory == schema.TrajectoryWorsening:
		return RuleLowDeclining
	case trajectory == schema.TrajectoryImproving && math.Abs(r.ChangePercentage) > improvingChangeMinimum:
		return RuleImproving
	case r.Variability == schema.VariabilityHigh:
		return RuleHighVariability
	case verdict == schema.VerdictNormal && trajectory == schema.TrajectoryStable:
		return RuleMaintain
	default:
		return RuleNone
	}
}

// Advisor renders advice rules into localized strings
type Advisor struct {
	bundle *i18n.Bundle
}

func NewAdvisor(bundle *i18n.Bundle) *Advisor {
	return &Advisor{bundle: bundle}
}

// Advise returns the advice line for a trend, if any rule applies
func (a *Advisor) Advise(r schema.TrendResult, lang string) (string, bool) {
	rule := MatchRule(r)
	if rule == RuleNone {
		return "", false
	}

	change := r.ChangePercentage
	if rule == RuleImproving {
		change = math.Abs(change)
	}

	return a.localize(string(rule), lang, map[string]interface{}{
		"Name":   r.BiomarkerName,
		"Change": fmt.Sprintf("%.1f", change),
		"Days":   consts.AdviceLookbackDays,
	}), true
}

// Fallback is returned when no tracked biomarker produced advice
func (a *Advisor) Fallback(lang string) string {
	return a.localize(adviceFallbackID, lang, nil)
}

func (a *Advisor) localize(id, lang string, data map[string]interface{}) string {
	message, err := utils.NewLocalizer(a.bundle, lang).Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: defaultMessage(id),
		TemplateData:   data,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": trendLogPrefix,
			"id":     id,
			"lang":   lang,
		}).WithError(err).Warn("can not localize advice")
	}
	return message
}

func defaultMessage(id string) *i18n.Message {
	for _, m := range AdviceMessages {
		if m.ID == id {
			return m
		}
	}
	return nil
}
