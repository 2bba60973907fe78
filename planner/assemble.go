// Plan Assembler (spec.md §4.9): merges the Wake-Ramp, every chain's steps
// and envelope blocks, and the placed meals into one gap-free, overlap-free
// Day Plan block sequence.
package planner

import (
	"sort"
	"time"

	"github.com/rahullath/dayplanner/period"
	"github.com/rahullath/dayplanner/planmodel"
)

const occurredBeforePlanStart = "Occurred before plan start"

// assemble merges every source of blocks, sorts them, fills gaps with
// buffer blocks, and fails hard on any overlap (spec.md §4.9's all-or-
// nothing failure semantics).
func assemble(ramp planmodel.WakeRamp, chains []planmodel.ExecutionChain, mealsList []planmodel.Meal, planStart, sleepTime time.Time) ([]planmodel.Block, error) {
	var blocks []planmodel.Block

	blocks = append(blocks, wakeRampBlocks(ramp)...)
	for _, c := range chains {
		blocks = append(blocks, chainBlocks(c)...)
	}
	blocks = append(blocks, mealBlocks(mealsList)...)

	sort.Slice(blocks, func(i, j int) bool {
		return period.Compare(blocks[i].Period, blocks[j].Period) < 0
	})

	if err := checkNoOverlap(blocks); err != nil {
		return nil, err
	}

	filled, err := fillGaps(blocks, planStart, sleepTime)
	if err != nil {
		return nil, err
	}

	markOverrun(filled, planStart)
	return filled, nil
}

func wakeRampBlocks(ramp planmodel.WakeRamp) []planmodel.Block {
	if ramp.Skipped {
		return nil
	}
	type component struct {
		label   string
		minutes int
	}
	components := []component{
		{"Toilet", ramp.Components.Toilet},
		{"Hygiene", ramp.Components.Hygiene},
		{"Shower", ramp.Components.Shower},
		{"Get dressed", ramp.Components.Dress},
		{"Buffer", ramp.Components.Buffer},
	}
	var blocks []planmodel.Block
	cursor := ramp.Period.Start()
	for _, c := range components {
		if c.minutes <= 0 {
			continue
		}
		end := cursor.Add(time.Duration(c.minutes) * time.Minute)
		p, err := period.New(cursor, end)
		if err != nil {
			continue
		}
		blocks = append(blocks, planmodel.Block{Kind: planmodel.KindRoutine, Period: p, Label: c.label, Status: planmodel.StatusPending})
		cursor = end
	}
	return blocks
}

func chainBlocks(c planmodel.ExecutionChain) []planmodel.Block {
	var blocks []planmodel.Block
	for _, s := range c.Steps {
		blocks = append(blocks, planmodel.Block{
			Kind:       planmodel.KindChainStep,
			Period:     s.Period,
			Label:      s.Name,
			Status:     s.Status,
			SkipReason: s.SkipReason,
			ChainID:    c.ChainID,
		})
	}
	blocks = append(blocks,
		planmodel.Block{Kind: planmodel.KindTravel, Period: c.Envelope.TravelThere, Label: "Travel", Status: planmodel.StatusPending, ChainID: c.ChainID},
		planmodel.Block{Kind: planmodel.KindAnchor, Period: c.Envelope.AnchorBlock, Label: c.Anchor.Title, Status: planmodel.StatusPending, ChainID: c.ChainID},
		planmodel.Block{Kind: planmodel.KindTravel, Period: c.Envelope.TravelBack, Label: "Travel", Status: planmodel.StatusPending, ChainID: c.ChainID},
		planmodel.Block{Kind: planmodel.KindChainStep, Period: c.Envelope.Recovery, Label: "Recovery", Status: planmodel.StatusPending, ChainID: c.ChainID},
	)
	return blocks
}

func mealBlocks(mealsList []planmodel.Meal) []planmodel.Block {
	var blocks []planmodel.Block
	for _, m := range mealsList {
		if m.Skipped {
			continue
		}
		blocks = append(blocks, planmodel.Block{Kind: planmodel.KindMeal, Period: m.Period, Label: string(m.Kind), Status: planmodel.StatusPending})
	}
	return blocks
}

func checkNoOverlap(blocks []planmodel.Block) error {
	for i := 0; i < len(blocks)-1; i++ {
		if blocks[i].Period.Overlaps(blocks[i+1].Period) {
			return planmodel.NewInvariantViolated("planner.assemble",
				"overlapping blocks: "+blocks[i].Label+" ("+blocks[i].Period.String()+") and "+blocks[i+1].Label+" ("+blocks[i+1].Period.String()+")")
		}
	}
	return nil
}

// fillGaps inserts a buffer block for every chronological gap, including
// before the first block and after the last, so the result is a gap-free
// partition of [planStart, sleepTime].
func fillGaps(blocks []planmodel.Block, planStart, sleepTime time.Time) ([]planmodel.Block, error) {
	var result []planmodel.Block
	cursor := planStart

	for _, b := range blocks {
		if b.Period.Start().After(cursor) {
			p, err := period.New(cursor, b.Period.Start())
			if err != nil {
				return nil, err
			}
			result = append(result, planmodel.Block{Kind: planmodel.KindBuffer, Period: p, Label: "Buffer", Status: planmodel.StatusPending})
		}
		if b.Period.End().After(cursor) {
			result = append(result, b)
			cursor = b.Period.End()
		}
	}

	if sleepTime.After(cursor) {
		p, err := period.New(cursor, sleepTime)
		if err != nil {
			return nil, err
		}
		result = append(result, planmodel.Block{Kind: planmodel.KindBuffer, Period: p, Label: "Buffer", Status: planmodel.StatusPending})
	}

	bounds, err := period.New(planStart, sleepTime)
	if err != nil {
		return nil, err
	}
	var periods []period.Period
	for _, b := range result {
		periods = append(periods, b.Period)
	}
	if err := period.IsGapFreePartition(bounds, periods); err != nil {
		return nil, planmodel.NewInvariantViolated("planner.assemble", err.Error())
	}
	return result, nil
}

func markOverrun(blocks []planmodel.Block, planStart time.Time) {
	for i := range blocks {
		if !blocks[i].Period.End().After(planStart) {
			blocks[i].Status = planmodel.StatusSkipped
			blocks[i].SkipReason = occurredBeforePlanStart
		}
	}
}
