package models

import "time"

// Goal is a savings target. Amounts are in minor currency units (cents).
// CurrentAmount never exceeds TargetAmount; contributions that would breach
// the target are rejected outright.
type Goal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  int64     `json:"targetAmount"`
	CurrentAmount int64     `json:"currentAmount"`
	Deadline      time.Time `json:"deadline"`
}

// EntityID returns the record key.
func (g *Goal) EntityID() string { return g.ID }

// SetEntityID assigns the record key.
func (g *Goal) SetEntityID(id string) { g.ID = id }
