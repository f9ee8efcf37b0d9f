package coaster

import "github.com/gdamore/tcell/v2"

// Flex directions.
const (
	// FlexRow lays items out side by side, left to right.
	FlexRow = iota
	// FlexColumn stacks items top to bottom.
	FlexColumn
)

// flexItem holds layout options for one item.
type flexItem struct {
	Item       Primitive
	FixedSize  int // Size that's always allocated, or 0 to use Proportion.
	Proportion int // The item's proportion of the remaining space.
	Focus      bool
}

// Flex is a basic implementation of the Flexbox layout. Items are laid out in
// one direction, each receiving either a fixed size or a share of the
// remaining space.
type Flex struct {
	*Box

	items     []*flexItem
	direction int
}

// NewFlex returns a new flexbox layout container with a row direction.
func NewFlex() *Flex {
	f := &Flex{
		Box:       NewBox(),
		direction: FlexRow,
	}
	f.SetDontClear(true)
	return f
}

// SetDirection sets the direction in which the contained primitives are
// distributed.
func (f *Flex) SetDirection(direction int) *Flex {
	f.direction = direction
	return f
}

// AddItem adds a new item to the container. A fixedSize of 0 makes the item
// share the remaining space according to proportion. If focus is true, the
// item receives focus when the container does.
func (f *Flex) AddItem(item Primitive, fixedSize, proportion int, focus bool) *Flex {
	f.items = append(f.items, &flexItem{Item: item, FixedSize: fixedSize, Proportion: proportion, Focus: focus})
	return f
}

// ResizeItem sets a new size for the item containing p.
func (f *Flex) ResizeItem(p Primitive, fixedSize, proportion int) *Flex {
	for _, item := range f.items {
		if item.Item == p {
			item.FixedSize = fixedSize
			item.Proportion = proportion
		}
	}
	return f
}

// Clear removes all items from the container.
func (f *Flex) Clear() *Flex {
	f.items = nil
	return f
}

// ItemCount returns the number of items.
func (f *Flex) ItemCount() int {
	return len(f.items)
}

// GetItem returns the primitive at the given index.
func (f *Flex) GetItem(index int) Primitive {
	return f.items[index].Item
}

// layout distributes the inner rect among the items.
func (f *Flex) layout() {
	x, y, width, height := f.GetInnerRect()
	var proportionSum int
	distSize := width
	if f.direction == FlexColumn {
		distSize = height
	}
	for _, item := range f.items {
		if item.FixedSize > 0 {
			distSize -= item.FixedSize
		} else {
			proportionSum += item.Proportion
		}
	}

	pos := x
	if f.direction == FlexColumn {
		pos = y
	}
	for _, item := range f.items {
		size := item.FixedSize
		if size <= 0 {
			if proportionSum > 0 {
				size = distSize * item.Proportion / proportionSum
				distSize -= size
				proportionSum -= item.Proportion
			} else {
				size = 0
			}
		}
		if f.direction == FlexColumn {
			item.Item.SetRect(x, pos, width, size)
		} else {
			item.Item.SetRect(pos, y, size, height)
		}
		pos += size
	}
}

// Draw draws this primitive onto the screen.
func (f *Flex) Draw(screen tcell.Screen) {
	f.DrawForSubclass(screen, f)
	f.layout()
	for _, item := range f.items {
		item.Item.Draw(screen)
	}
}

// Focus is called when this primitive receives focus.
func (f *Flex) Focus(delegate func(p Primitive)) {
	for _, item := range f.items {
		if item.Item != nil && item.Focus {
			delegate(item.Item)
			return
		}
	}
	f.Box.Focus(delegate)
}

// HasFocus returns whether or not this primitive has focus.
func (f *Flex) HasFocus() bool {
	for _, item := range f.items {
		if item.Item != nil && item.Item.HasFocus() {
			return true
		}
	}
	return f.Box.HasFocus()
}

// InputHandler passes key events to the focused item.
func (f *Flex) InputHandler(event *tcell.EventKey) Command {
	for _, item := range f.items {
		if item.Item != nil && item.Item.HasFocus() {
			return item.Item.InputHandler(event)
		}
	}
	return nil
}

// MouseHandler sends mouse moves to every item, so items can tell when the
// pointer leaves them, and any other action to the item under the pointer.
func (f *Flex) MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command) {
	if action == MouseMove {
		for _, item := range f.items {
			if item.Item == nil {
				continue
			}
			c, next := item.Item.MouseHandler(action, event)
			if c != nil {
				capture = c
			}
			cmd = AppendCommand(cmd, next)
		}
		return capture, cmd
	}

	if !f.InRect(event.Position()) {
		return nil, nil
	}
	for _, item := range f.items {
		if item.Item == nil {
			continue
		}
		x, y, width, height := item.Item.GetRect()
		ex, ey := event.Position()
		if ex >= x && ex < x+width && ey >= y && ey < y+height {
			return item.Item.MouseHandler(action, event)
		}
	}
	return nil, nil
}

var _ Primitive = &Flex{}
