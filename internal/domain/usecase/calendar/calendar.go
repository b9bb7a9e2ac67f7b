// Package calendar defines the fixed daily reservable blocks and resolves them
// to instants in one configured time zone.
package calendar

import (
	"fmt"
	"sort"
	"time"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
)

// BlockID names a reservable block
type BlockID string

// Block identifiers
const (
	BlockA BlockID = "A"
	BlockB BlockID = "B"
	BlockC BlockID = "C"
)

// BlockDuration is the length of every block
const BlockDuration = 4 * time.Hour

// Block is a daily window offered on some weekdays
type Block struct {
	ID          BlockID
	StartHour   int
	StartMinute int
	Duration    time.Duration
	Weekdays    []time.Weekday
}

func (b Block) offeredOn(day time.Weekday) bool {
	for _, d := range b.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Window is a resolved [Start, End] interval
type Window struct {
	Start time.Time
	End   time.Time
}

// Widen returns the window extended by margin on both ends
func (w Window) Widen(margin time.Duration) Window {
	return Window{Start: w.Start.Add(-margin), End: w.End.Add(margin)}
}

var mondayToThursday = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday}

// DefaultBlocks returns Block A 09:00-13:00 and Block B 14:00-18:00 Monday to
// Thursday, plus Block C 09:00-13:00 on Fridays when withFridayBlock is set.
func DefaultBlocks(withFridayBlock bool) []Block {
	blocks := []Block{
		{ID: BlockA, StartHour: 9, Duration: BlockDuration, Weekdays: mondayToThursday},
		{ID: BlockB, StartHour: 14, Duration: BlockDuration, Weekdays: mondayToThursday},
	}
	if withFridayBlock {
		blocks = append(blocks, Block{ID: BlockC, StartHour: 9, Duration: BlockDuration, Weekdays: []time.Weekday{time.Friday}})
	}
	return blocks
}

// Calendar resolves blocks in a fixed location. It is safe for concurrent use.
type Calendar struct {
	loc    *time.Location
	blocks []Block
}

// New creates a calendar. A nil location means UTC.
func New(loc *time.Location, blocks []Block) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartHour != sorted[j].StartHour {
			return sorted[i].StartHour < sorted[j].StartHour
		}
		return sorted[i].ID < sorted[j].ID
	})
	return &Calendar{loc: loc, blocks: sorted}
}

// Location returns the calendar's time zone
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// BlocksOfferedOn returns the blocks offered on the calendar date of date
func (c *Calendar) BlocksOfferedOn(date time.Time) []BlockID {
	day := date.In(c.loc).Weekday()
	var ids []BlockID
	for _, b := range c.blocks {
		if b.offeredOn(day) {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// ResolveBlockWindow returns the window of block id on the calendar date of date
func (c *Calendar) ResolveBlockWindow(date time.Time, id BlockID) (Window, error) {
	b, ok := c.block(id)
	if !ok {
		return Window{}, errs.NewInvalidBlockError(fmt.Sprintf("unknown block %q", id))
	}
	local := date.In(c.loc)
	if !b.offeredOn(local.Weekday()) {
		return Window{}, errs.NewInvalidBlockError(fmt.Sprintf("block %s is not offered on %s", id, local.Weekday()))
	}
	return c.window(local, b), nil
}

// MatchBlock returns the block whose window on start's date is exactly [start, end].
// Anything else, including windows straddling two blocks, is an invalid block.
func (c *Calendar) MatchBlock(start, end time.Time) (BlockID, error) {
	if !start.Before(end) {
		return "", errs.NewInvalidBlockError("start must be before end")
	}
	local := start.In(c.loc)
	for _, b := range c.blocks {
		if !b.offeredOn(local.Weekday()) {
			continue
		}
		w := c.window(local, b)
		if w.Start.Equal(start) && w.End.Equal(end) {
			return b.ID, nil
		}
	}
	return "", errs.NewInvalidBlockError(fmt.Sprintf("window %s - %s does not match a block offered on %s",
		start.In(c.loc).Format(time.RFC3339), end.In(c.loc).Format(time.RFC3339), local.Format(time.DateOnly)))
}

// WeekBounds returns the ISO week containing ref as [Monday 00:00, next Monday 00:00)
func (c *Calendar) WeekBounds(ref time.Time) (time.Time, time.Time) {
	local := ref.In(c.loc)
	offset := (int(local.Weekday()) + 6) % 7 // days since Monday
	y, m, d := local.Date()
	monday := time.Date(y, m, d-offset, 0, 0, 0, 0, c.loc)
	return monday, monday.AddDate(0, 0, 7)
}

// StartOfDay returns midnight of ref's calendar date
func (c *Calendar) StartOfDay(ref time.Time) time.Time {
	y, m, d := ref.In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

func (c *Calendar) block(id BlockID) (Block, bool) {
	for _, b := range c.blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

func (c *Calendar) window(local time.Time, b Block) Window {
	y, m, d := local.Date()
	start := time.Date(y, m, d, b.StartHour, b.StartMinute, 0, 0, c.loc)
	return Window{Start: start, End: start.Add(b.Duration)}
}
