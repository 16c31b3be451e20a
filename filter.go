package main

import (
	"strings"

	"github.com/samber/lo"
)

// Candidate predicates for puzzle construction. Communities are filtered on
// metadata, comments on their body text.

// selfReferencePhrases give the answer away when they appear in a comment.
var selfReferencePhrases = []string{
	"this sub",
	"this subreddit",
}

// botSignatures mark automated comments.
var botSignatures = []string{
	"i am a bot",
	"automoderator",
	"this action was performed automatically",
}

// communitySafe rejects adult-flagged communities outright.
func communitySafe(info CommunityInfo) bool {
	return !info.Adult
}

// qualifiesForMode applies the mode's popularity gate. An unknown count never
// qualifies for the gated tiers; treating missing data as passing would
// collapse every tier into the same pool.
func qualifiesForMode(mode string, subscribers int64) bool {
	switch mode {
	case ModeEasy:
		return subscribers >= EasySubscriberMin
	case ModeMedium:
		return subscribers >= MediumSubscriberMin
	default:
		return true
	}
}

// commentPresent is the loose gate: the comment exists and was not deleted.
func commentPresent(body string) bool {
	trimmed := strings.TrimSpace(body)
	return trimmed != "" && trimmed != "[deleted]" && trimmed != "[removed]"
}

// commentUsable is the primary gate: present, long enough, and not leaking or
// boilerplate. answer is the community name the comment must not reveal.
func commentUsable(body, answer string) bool {
	if !commentPresent(body) {
		return false
	}
	trimmed := strings.TrimSpace(body)
	if len(trimmed) < MinCommentLength {
		return false
	}
	lower := strings.ToLower(trimmed)
	if answer != "" && strings.Contains(lower, strings.ToLower(answer)) {
		return false
	}
	if lo.SomeBy(selfReferencePhrases, func(p string) bool { return strings.Contains(lower, p) }) {
		return false
	}
	if lo.SomeBy(botSignatures, func(p string) bool { return strings.Contains(lower, p) }) {
		return false
	}
	return true
}

// usableComments returns the primary pool for a puzzle answer.
func usableComments(comments []Comment, answer string) []Comment {
	return lo.Filter(comments, func(c Comment, _ int) bool {
		return commentUsable(c.Body, answer) && !strings.EqualFold(c.Author, "AutoModerator")
	})
}

// presentComments returns the loose fallback pool.
func presentComments(comments []Comment) []Comment {
	return lo.Filter(comments, func(c Comment, _ int) bool {
		return commentPresent(c.Body)
	})
}
