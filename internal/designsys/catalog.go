package designsys

// Catalog holds the known design systems and packs. Like the palette
// registry it is an explicit object handed to whoever needs lookups, but
// its contents are fixed at construction, so reads need no locking.
type Catalog struct {
	systems   map[string]System
	sysOrder  []string
	packs     map[string]Pack
	packOrder []string
}

// NewCatalog builds a catalog of the built-in systems and packs.
func NewCatalog() *Catalog {
	c := &Catalog{
		systems: make(map[string]System),
		packs:   make(map[string]Pack),
	}
	for _, s := range BuiltinSystems() {
		c.systems[s.Name] = s
		c.sysOrder = append(c.sysOrder, s.Name)
	}
	for _, p := range BuiltinPacks() {
		c.packs[p.Name] = p
		c.packOrder = append(c.packOrder, p.Name)
	}
	return c
}

// System returns the named design system.
func (c *Catalog) System(name string) (System, bool) {
	s, ok := c.systems[name]
	return s, ok
}

// LookupSystem returns the named system, falling back to the default
// system when the name is unknown. Selection values arrive from cookies
// and query strings and are corrected, not rejected.
func (c *Catalog) LookupSystem(name string) System {
	if s, ok := c.systems[name]; ok {
		return s
	}
	return c.systems[DefaultSystem]
}

// HasSystem reports whether a design system with the given name exists.
func (c *Catalog) HasSystem(name string) bool {
	_, ok := c.systems[name]
	return ok
}

// Systems returns all design systems in catalog order.
func (c *Catalog) Systems() []System {
	out := make([]System, 0, len(c.sysOrder))
	for _, name := range c.sysOrder {
		out = append(out, c.systems[name])
	}
	return out
}

// SystemNames returns the design system names in catalog order.
func (c *Catalog) SystemNames() []string {
	out := make([]string, len(c.sysOrder))
	copy(out, c.sysOrder)
	return out
}

// Pack returns the named theme pack. There is no fallback pack: an
// unknown name means the selection renders without pack styling.
func (c *Catalog) Pack(name string) (Pack, bool) {
	p, ok := c.packs[name]
	return p, ok
}

// HasPack reports whether a pack with the given name exists.
func (c *Catalog) HasPack(name string) bool {
	_, ok := c.packs[name]
	return ok
}

// Packs returns all theme packs in catalog order.
func (c *Catalog) Packs() []Pack {
	out := make([]Pack, 0, len(c.packOrder))
	for _, name := range c.packOrder {
		out = append(out, c.packs[name])
	}
	return out
}

// PackNames returns the pack names in catalog order.
func (c *Catalog) PackNames() []string {
	out := make([]string, len(c.packOrder))
	copy(out, c.packOrder)
	return out
}
