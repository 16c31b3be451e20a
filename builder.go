package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Puzzle construction. Every selection is driven by a sampler seeded from the
// day key and mode, so the same inputs and the same upstream snapshot always
// yield the same puzzle. Exhausted data sources are hard errors and are not
// retried here; a retry against changed upstream state would produce a
// different puzzle for the same day.

var (
	ErrNoCandidates = errors.New("no candidate communities found")
	ErrNoPosts      = errors.New("no posts found in chosen community")
	ErrNoComments   = errors.New("no usable comments found")
)

type communityCandidate struct {
	name        string
	subscribers int64
}

// buildPuzzle assembles the DailyPuzzle for (dayKey, mode). The caller is
// responsible for persisting the result.
func (app *App) buildPuzzle(ctx context.Context, dayKey, mode string) (*DailyPuzzle, error) {
	reqID, _ := ctx.Value(requestIDKey).(string)

	feed, err := app.listWithFallback(ctx, "", GlobalListingLimit)
	if err != nil {
		return nil, err
	}
	if len(feed) == 0 {
		return nil, ErrNoCandidates
	}

	communities := lo.Uniq(lo.Map(feed, func(p Post, _ int) string { return p.Community }))
	scan := newSampler(dayKey + "|" + mode + "|scan")
	scan.shuffle(len(communities), func(i, j int) {
		communities[i], communities[j] = communities[j], communities[i]
	})

	community := app.chooseCommunity(ctx, dayKey, mode, communities)
	if reqID != "" {
		logInfo("[request_id=%v] Puzzle %s/%s: chose community %s from %d candidates", reqID, dayKey, mode, community, len(communities))
	} else {
		logInfo("Puzzle %s/%s: chose community %s from %d candidates", dayKey, mode, community, len(communities))
	}

	posts, err := app.listWithFallback(ctx, community, CommunityListingLimit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPosts, community)
	}
	post := posts[newSampler(dayKey+"|"+mode+"|"+community+"|post").pick(len(posts))]

	comments, err := app.Source.ListComments(ctx, community, post.ID, CommentFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("list comments for %s/%s: %w", community, post.ID, err)
	}
	pool := usableComments(comments, community)
	if len(pool) == 0 {
		// Every comment looked promotional or self-referential; fall back to
		// anything that still exists rather than failing the whole day.
		pool = presentComments(comments)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoComments, community, post.ID)
	}
	comment := pool[newSampler(dayKey+"|"+mode+"|"+community+"|comment").pick(len(pool))]

	return &DailyPuzzle{
		DayKey:        dayKey,
		Mode:          mode,
		Community:     community,
		PostID:        post.ID,
		PostTitle:     post.Title,
		PostBody:      post.Body,
		CommentID:     comment.ID,
		CommentBody:   comment.Body,
		CommentAuthor: comment.Author,
	}, nil
}

// listWithFallback lists posts newest-first, degrading to the trending
// listing when that fails. community == "" means the global feed.
func (app *App) listWithFallback(ctx context.Context, community string, limit int) ([]Post, error) {
	posts, err := app.Source.ListPosts(ctx, community, SortNew, limit)
	if err == nil && len(posts) > 0 {
		return posts, nil
	}
	if err != nil {
		logWarn("New listing for %q failed, trying trending: %v", community, err)
	}
	posts, err = app.Source.ListPosts(ctx, community, SortHot, limit)
	if err != nil {
		return nil, fmt.Errorf("list posts for %q: %w", community, err)
	}
	return posts, nil
}

// chooseCommunity scans a bounded prefix of the shuffled candidate list and
// picks the answer community for the mode. It never fails: if the scan comes
// up empty the full list decides deterministically.
func (app *App) chooseCommunity(ctx context.Context, dayKey, mode string, communities []string) string {
	limit := min(len(communities), CommunityScanLimit)

	if mode == ModeHard {
		for _, name := range communities[:limit] {
			info, err := app.Source.CommunityInfo(ctx, name)
			if err != nil {
				logWarn("Skipping candidate %s: %v", name, err)
				continue
			}
			if communitySafe(info) {
				return name
			}
		}
		return communities[newSampler(dayKey+"|"+mode+"|fallback").pick(len(communities))]
	}

	var qualified []communityCandidate
	var unknownSafe []string
	for _, name := range communities[:limit] {
		info, err := app.Source.CommunityInfo(ctx, name)
		if err != nil {
			logWarn("Skipping candidate %s: %v", name, err)
			continue
		}
		if !communitySafe(info) {
			continue
		}
		if info.Subscribers == UnknownSubscribers {
			if len(unknownSafe) < UnknownSafeCap {
				unknownSafe = append(unknownSafe, name)
			}
			continue
		}
		if qualifiesForMode(mode, info.Subscribers) {
			qualified = append(qualified, communityCandidate{name: name, subscribers: info.Subscribers})
			if len(qualified) >= QualifiedCandidateCap {
				break
			}
		}
	}

	if len(qualified) > 0 {
		if mode == ModeEasy && len(qualified) > 1 {
			// Bias the easy tier toward the most-subscribed half of its pool.
			sort.SliceStable(qualified, func(i, j int) bool {
				return qualified[i].subscribers > qualified[j].subscribers
			})
			qualified = qualified[:(len(qualified)+1)/2]
		}
		picked := qualified[newSampler(dayKey+"|"+mode+"|pick").pick(len(qualified))]
		return picked.name
	}
	if len(unknownSafe) > 0 {
		return unknownSafe[newSampler(dayKey+"|"+mode+"|pick-unknown").pick(len(unknownSafe))]
	}
	return communities[newSampler(dayKey+"|"+mode+"|fallback").pick(len(communities))]
}
