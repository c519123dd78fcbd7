package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkPileRecord BookmarkType = "pile_record" // pile taller than ever before
	BookmarkNearTop    BookmarkType = "near_top"    // pile reached the danger line
	BookmarkSlowSettle BookmarkType = "slow_settle" // fall time spiked above the rolling average
	BookmarkPitAtRest  BookmarkType = "pit_at_rest" // nothing moving for several windows
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        uint64       `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// restSpeed is the p90 speed below which a window counts as at rest.
const restSpeed = 0.05

// BookmarkDetector detects interesting moments in a run.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	dangerHeight float64 // pile height that triggers near_top

	// State tracking
	recordHeight    float64
	nearTop         bool
	restWindowCount int
}

// NewBookmarkDetector creates a detector with the given history size. A pile
// at or above dangerHeight triggers near_top once per crossing.
func NewBookmarkDetector(historySize int, dangerHeight float64) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:      make([]WindowStats, historySize),
		historySize:  historySize,
		dangerHeight: dangerHeight,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkPileRecord(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkNearTop(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if bd.historyFull || bd.historyIdx > 0 {
		if b := bd.checkSlowSettle(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}
	if b := bd.checkAtRest(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkPileRecord(stats WindowStats) *Bookmark {
	if stats.PileHeight <= bd.recordHeight {
		return nil
	}
	prev := bd.recordHeight
	bd.recordHeight = stats.PileHeight
	if prev == 0 {
		// First fruit to settle is not a record.
		return nil
	}
	return &Bookmark{
		Type:        BookmarkPileRecord,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("pile height %.1f (was %.1f)", stats.PileHeight, prev),
	}
}

func (bd *BookmarkDetector) checkNearTop(stats WindowStats) *Bookmark {
	above := bd.dangerHeight > 0 && stats.PileHeight >= bd.dangerHeight
	crossed := above && !bd.nearTop
	bd.nearTop = above
	if !crossed {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkNearTop,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("pile height %.1f reached danger line %.1f", stats.PileHeight, bd.dangerHeight),
	}
}

func (bd *BookmarkDetector) checkSlowSettle(stats WindowStats) *Bookmark {
	if stats.Settles == 0 {
		return nil
	}

	var sum float64
	var n int
	for _, h := range bd.getHistory() {
		if h.Settles > 0 {
			sum += h.FallTicksMean
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	if avg <= 0 || stats.FallTicksMean <= 2*avg {
		return nil
	}

	return &Bookmark{
		Type:        BookmarkSlowSettle,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("fall time %.0f ticks (avg %.0f)", stats.FallTicksMean, avg),
	}
}

func (bd *BookmarkDetector) checkAtRest(stats WindowStats) *Bookmark {
	if stats.Falling > 0 || stats.Rolling == 0 || stats.SpeedP90 >= restSpeed {
		bd.restWindowCount = 0
		return nil
	}

	bd.restWindowCount++
	if bd.restWindowCount != bd.historySize {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkPitAtRest,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d fruits at rest for %d windows", stats.Rolling, bd.restWindowCount),
	}
}
