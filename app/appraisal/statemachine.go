package appraisal

import (
	"fmt"

	"fdw-appraisal/app/models"
)

// TransitionContext carries the precondition facts a transition guard may
// need. Callers fill in what the other components have recorded; the
// machine itself never reads storage.
type TransitionContext struct {
	SelfMarksSubmitted     bool
	HODVerified            bool
	PortfolioRequested     bool
	AuthorityMarksRecorded bool
	ExternalsFrozen        bool
	InteractionSubmitted   bool
	InDirectorBatch        bool
}

type transitionRule struct {
	guard  func(TransitionContext) bool
	reason string
}

// transitions is the closed edge table of the appraisal lifecycle.
// Status only advances forward; there is no edge back to an earlier
// state anywhere in the table.
var transitions = map[models.Status]map[models.Status]transitionRule{
	models.StatusPending: {
		models.StatusVerificationPending: {
			guard:  func(ctx TransitionContext) bool { return ctx.SelfMarksSubmitted },
			reason: "self marks not submitted",
		},
	},
	models.StatusVerificationPending: {
		models.StatusAuthorityVerification: {
			guard:  func(ctx TransitionContext) bool { return ctx.HODVerified },
			reason: "HOD verification not recorded",
		},
	},
	models.StatusAuthorityVerification: {
		models.StatusPortfolioMarkDeanPending: {
			guard:  func(ctx TransitionContext) bool { return ctx.PortfolioRequested },
			reason: "dean portfolio marks not requested",
		},
		models.StatusPortfolioMarkDirPending: {
			guard:  func(ctx TransitionContext) bool { return ctx.PortfolioRequested },
			reason: "director portfolio marks not requested",
		},
		models.StatusInteractionPending: {
			guard:  func(ctx TransitionContext) bool { return ctx.ExternalsFrozen },
			reason: "external reviewer assignments not frozen",
		},
	},
	models.StatusPortfolioMarkDeanPending: {
		models.StatusDone: {
			guard:  func(ctx TransitionContext) bool { return ctx.AuthorityMarksRecorded },
			reason: "dean marks not recorded",
		},
		models.StatusInteractionPending: {
			guard:  func(ctx TransitionContext) bool { return ctx.ExternalsFrozen },
			reason: "external reviewer assignments not frozen",
		},
	},
	models.StatusPortfolioMarkDirPending: {
		models.StatusDone: {
			guard:  func(ctx TransitionContext) bool { return ctx.AuthorityMarksRecorded },
			reason: "director marks not recorded",
		},
		models.StatusInteractionPending: {
			guard:  func(ctx TransitionContext) bool { return ctx.ExternalsFrozen },
			reason: "external reviewer assignments not frozen",
		},
	},
	models.StatusInteractionPending: {
		models.StatusDone: {
			guard:  func(ctx TransitionContext) bool { return ctx.InteractionSubmitted },
			reason: "no submitted interaction evaluation",
		},
	},
	models.StatusDone: {
		models.StatusSentToDirector: {
			guard:  func(ctx TransitionContext) bool { return ctx.InDirectorBatch },
			reason: "faculty not in a director-bound batch",
		},
	},
}

// statusRank orders statuses for the monotonicity check.
var statusRank = func() map[models.Status]int {
	ranks := make(map[models.Status]int, len(models.AllStatuses))
	for i, s := range models.AllStatuses {
		ranks[s] = i
	}
	return ranks
}()

// Advance validates and executes one status transition. Re-requesting the
// current status is an idempotent no-op, tolerating at-least-once delivery
// of the triggering event. Everything else not in the edge table, or whose
// precondition is unmet, fails with ErrInvalidTransition.
func Advance(current, target models.Status, ctx TransitionContext) (models.Status, error) {
	if current == target {
		return current, nil
	}
	rule, ok := transitions[current][target]
	if !ok {
		return current, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, target)
	}
	if !rule.guard(ctx) {
		return current, fmt.Errorf("%w: %s -> %s: %s", ErrInvalidTransition, current, target, rule.reason)
	}
	return target, nil
}

// CanAdvance reports whether the transition would succeed without
// executing it.
func CanAdvance(current, target models.Status, ctx TransitionContext) bool {
	_, err := Advance(current, target, ctx)
	return err == nil
}

// IsForward reports whether to comes at or after from in the lifecycle.
// Unknown statuses are never forward.
func IsForward(from, to models.Status) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}
