package wheel

// RegionCell holds the regions of the latest frame. Only the spin driver
// publishes into it; everyone else reads.
type RegionCell struct {
	regions []Region
}

// Publish replaces the current regions. The previous list is dropped.
func (c *RegionCell) Publish(regions []Region) {
	c.regions = regions
}

// Current returns the regions of the latest frame.
func (c *RegionCell) Current() []Region {
	return c.regions
}

// Controller routes pointer clicks to the current frame's regions.
type Controller struct {
	cell *RegionCell
}

func NewController(cell *RegionCell) *Controller {
	return &Controller{cell: cell}
}

// Click localizes raw by the surface's on-screen offset and fires every
// region it hits. It returns the number of regions hit.
func (c *Controller) Click(raw, offset Point) int {
	p := raw.Sub(offset)
	// Snapshot so an OnHit that publishes new regions doesn't affect this click.
	regions := c.cell.Current()
	hits := 0
	for _, r := range regions {
		if r.TestHit == nil || !r.TestHit(p) {
			continue
		}
		hits++
		if r.OnHit != nil {
			r.OnHit()
		}
	}
	return hits
}
