package styled

import "fmt"

// WithSlots returns a derived component carrying named sub-components (an
// icon slot on a button, a header slot on a card). The slot tree is built
// once, here, and never mutated afterwards: the receiver is left untouched,
// so a component can be reused as the basis for several slotted variants
// without cloning dances or decoration markers.
func (c *Component) WithSlots(slots map[string]*Component) (*Component, error) {
	for name, slot := range slots {
		if name == "" {
			return nil, fmt.Errorf("styled: slot name must not be empty")
		}
		if slot == nil {
			return nil, fmt.Errorf("styled: slot %q is nil", name)
		}
	}

	derived := *c
	derived.slots = make(map[string]*Component, len(slots)+len(c.slots))
	for name, slot := range c.slots {
		derived.slots[name] = slot
	}
	for name, slot := range slots {
		derived.slots[name] = slot
	}
	return &derived, nil
}

// MustWithSlots is WithSlots for slot trees authored in source; it panics
// on error.
func (c *Component) MustWithSlots(slots map[string]*Component) *Component {
	derived, err := c.WithSlots(slots)
	if err != nil {
		panic(err)
	}
	return derived
}

// Slot returns the named sub-component, if attached.
func (c *Component) Slot(name string) (*Component, bool) {
	slot, ok := c.slots[name]
	return slot, ok
}

// SlotNames lists attached slot names; order is unspecified.
func (c *Component) SlotNames() []string {
	names := make([]string, 0, len(c.slots))
	for name := range c.slots {
		names = append(names, name)
	}
	return names
}
