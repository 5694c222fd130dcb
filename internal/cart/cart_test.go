package cart

import (
	"errors"
	"testing"

	"storefront/internal/domain"
)

func TestAddMergesByName(t *testing.T) {
	c := &Cart{}
	c.Add("Burger", 150)
	c.Add("Fries", 99)
	c.Add("Burger", 150)
	c.Add("Burger", 150)

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected one line per distinct name, got %+v", lines)
	}
	if lines[0].Name != "Burger" || lines[0].Quantity != 3 {
		t.Fatalf("expected Burger x3 first, got %+v", lines[0])
	}
	if lines[1].Name != "Fries" || lines[1].Quantity != 1 {
		t.Fatalf("expected Fries x1 second, got %+v", lines[1])
	}
}

func TestAddKeepsExistingPriceOnMerge(t *testing.T) {
	c := &Cart{}
	c.Add("Burger", 150)
	c.Add("Burger", 175)

	lines := c.Lines()
	if lines[0].Price != 150 {
		t.Fatalf("expected price from the existing line, got %v", lines[0].Price)
	}
}

func TestAdjustQuantityClampsAtOne(t *testing.T) {
	c := &Cart{}
	c.Add("Burger", 150)

	if err := c.AdjustQuantity(0, -5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines := c.Lines(); lines[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", lines[0].Quantity)
	}

	if err := c.AdjustQuantity(0, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines := c.Lines(); lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestAdjustQuantityUnknownIndex(t *testing.T) {
	c := &Cart{}
	if err := c.AdjustQuantity(0, 1); !errors.Is(err, domain.ErrLineNotFound) {
		t.Fatalf("expected line not found, got %v", err)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	c := &Cart{}
	c.Add("Burger", 150)
	c.Add("Fries", 99)
	c.Add("Cola", 40)

	if err := c.Remove(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := c.Lines()
	if len(lines) != 2 || lines[0].Name != "Burger" || lines[1].Name != "Cola" {
		t.Fatalf("expected relative order preserved, got %+v", lines)
	}

	if err := c.Remove(5); !errors.Is(err, domain.ErrLineNotFound) {
		t.Fatalf("expected line not found, got %v", err)
	}
}

func TestTotals(t *testing.T) {
	c := &Cart{}
	c.Add("Burger", 150)
	c.Add("Burger", 150)
	c.Add("Fries", 99.5)

	totals := c.Totals()
	if totals.Subtotal != 399.5 {
		t.Fatalf("expected subtotal 399.5, got %v", totals.Subtotal)
	}
	if totals.Discount != 0 {
		t.Fatalf("expected discount fixed at zero, got %v", totals.Discount)
	}
	if totals.Total != totals.Subtotal {
		t.Fatalf("expected total == subtotal with zero discount, got %v", totals.Total)
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	c := &Cart{}
	totals := c.Totals()
	if totals.Subtotal != 0 || totals.Total != 0 {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestTotalsAvoidsFloatDrift(t *testing.T) {
	c := &Cart{}
	// 0.1 + 0.2 style accumulation drifts under naive float math.
	for i := 0; i < 10; i++ {
		c.Add("Candy", 0.1)
	}
	if totals := c.Totals(); totals.Subtotal != 1 {
		t.Fatalf("expected exact subtotal 1, got %v", totals.Subtotal)
	}
}

func TestCountSumsQuantities(t *testing.T) {
	c := &Cart{}
	c.Add("Burger", 150)
	c.Add("Burger", 150)
	c.Add("Fries", 99)
	if got := c.Count(); got != 3 {
		t.Fatalf("expected badge count 3, got %d", got)
	}
}

func TestClear(t *testing.T) {
	c := &Cart{}
	c.Add("Burger", 150)
	c.Clear()
	if len(c.Lines()) != 0 || c.Count() != 0 {
		t.Fatal("expected empty cart after clear")
	}
}
