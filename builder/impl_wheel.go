// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • Wₙ = Cₙ₋₁ plus a hub joined to every rim vertex.
//   • n ≥ 4 (else ErrTooFewVertices), because the rim needs ≥ 3 vertices.
//   • Rim vertices come first, the hub is the last new vertex.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(c, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		hub := c.grow(1)
		for i := 1; i < n; i++ {
			c.join(hub, hub-i)
		}

		return nil
	}
}
