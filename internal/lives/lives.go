// Package lives counts down the wrong answers a player may give in a round.
package lives

// DefaultMax is the number of lives a round starts with.
const DefaultMax = 3

// Controller tracks remaining lives. Once over it stays over until Restart.
type Controller struct {
	max   int
	lives int
	over  bool
}

// New creates a Controller with max lives. Values below 1 become 1.
func New(max int) *Controller {
	if max < 1 {
		max = 1
	}
	c := &Controller{max: max}
	c.Restart()
	return c
}

// LoseLife removes a life and reports whether the game is over, either
// because this call used the last life or because it was already over.
func (c *Controller) LoseLife() bool {
	if c.over {
		return true
	}
	c.lives = max(c.lives-1, 0)
	if c.lives == 0 {
		c.over = true
	}
	return c.over
}

// Restart refills every life.
func (c *Controller) Restart() {
	c.lives = c.max
	c.over = false
}

// Lives returns the remaining lives.
func (c *Controller) Lives() int { return c.lives }

// Max returns the lives a round starts with.
func (c *Controller) Max() int { return c.max }

// IsOver reports whether every life has been lost.
func (c *Controller) IsOver() bool { return c.over }
